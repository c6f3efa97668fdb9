// Package shorturl is the client for the external short-link API. The API
// itself lives elsewhere; this package only speaks its contract: a
// {success, data, message} envelope over JSON, bearer-token auth for
// everything except login and slug resolution.
package shorturl

import "time"

// Link is one shortened URL as returned by the list and resolve endpoints.
type Link struct {
	Slug        string    `json:"slug"`
	Content     string    `json:"content"`
	ContentType string    `json:"contentType"`
	CreatedAt   time.Time `json:"createdAt"`
	Visits      int       `json:"visits"`
}

// CreatePayload is the body of the generate endpoint. Slug is optional; the
// server picks one when it is empty.
type CreatePayload struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
	Slug        string `json:"slug,omitempty"`
}

// Created is the response data of a successful generate call.
type Created struct {
	Slug     string `json:"slug"`
	ShortURL string `json:"shortUrl"`
}

// TypeVisits is one slice of the traffic-by-type breakdown.
type TypeVisits struct {
	ContentType string `json:"contentType"`
	Visits      int    `json:"visits"`
}

// LinkVisits is one row of the top-links ranking.
type LinkVisits struct {
	Slug   string `json:"slug"`
	Visits int    `json:"visits"`
}

// Summary is the account-wide analytics snapshot.
type Summary struct {
	TotalLinks  int          `json:"totalLinks"`
	TotalVisits int          `json:"totalVisits"`
	ByType      []TypeVisits `json:"byType"`
	TopLinks    []LinkVisits `json:"topLinks"`
}

// DayVisits is one day of a per-link visit series.
type DayVisits struct {
	Date   string `json:"date"`
	Visits int    `json:"visits"`
}

// LinkAnalytics is the per-link analytics payload.
type LinkAnalytics struct {
	Slug   string      `json:"slug"`
	Visits int         `json:"visits"`
	ByDay  []DayVisits `json:"byDay"`
}
