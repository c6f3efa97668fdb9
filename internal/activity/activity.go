// Package activity turns a year of per-day contribution counts into the
// week-major grid rendered as a heat map on the home tab.
package activity

import "time"

// Day is a single day of contribution data as served by the public
// contributions proxy. Level is a precomputed intensity in [0,4]; the
// placeholder cells inserted by BucketWeeks carry Level == -1.
type Day struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Level int    `json:"level"`
}

// IsPlaceholder reports whether the day is an alignment cell with no data.
func (d Day) IsPlaceholder() bool {
	return d.Level == LevelPlaceholder
}

// LevelPlaceholder marks a grid cell that exists only to push the first real
// day into its weekday column.
const LevelPlaceholder = -1

// BucketWeeks groups consecutive days into weeks of seven, Sunday first.
// The first week is padded with leading placeholders so that days land in
// their weekday columns; the last week is sealed short, never padded. The
// jagged tail is intentional and the renderer depends on it.
//
// Days must be sorted ascending and contiguous; that is the data source's
// contract, not validated here.
func BucketWeeks(days []Day) [][]Day {
	if len(days) == 0 {
		return nil
	}

	var weeks [][]Day
	week := make([]Day, 0, 7)

	first, err := time.Parse("2006-01-02", days[0].Date)
	if err == nil {
		for i := 0; i < int(first.Weekday()); i++ {
			week = append(week, Day{Level: LevelPlaceholder})
		}
	}

	for _, d := range days {
		week = append(week, d)
		if len(week) == 7 {
			weeks = append(weeks, week)
			week = make([]Day, 0, 7)
		}
	}
	if len(week) > 0 {
		weeks = append(weeks, week)
	}

	return weeks
}

// Heat map ramp, low to high. Matches the emerald scale used on the site.
var levelColors = [5]string{"#27272a", "#064e3b", "#047857", "#059669", "#10b981"}

// LevelColor maps an intensity level to a hex color token. The level comes
// from an external source, so anything outside [0,4] other than the
// placeholder falls back to the lowest intensity rather than failing.
// Placeholders map to the empty token and render as blank cells.
func LevelColor(level int) string {
	if level == LevelPlaceholder {
		return ""
	}
	if level < 0 || level >= len(levelColors) {
		return levelColors[0]
	}
	return levelColors[level]
}
