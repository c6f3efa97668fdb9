// Package linkview computes the dashboard's visible slice of the link list:
// free-text filter, sort, and pagination over the client-side cache. View is
// a pure function so every keystroke can recompute it from scratch.
package linkview

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/raghavdwd/folio/internal/shorturl"
)

// SortKey selects the ordering of the filtered list.
type SortKey string

const (
	SortDateDesc   SortKey = "date-desc"
	SortDateAsc    SortKey = "date-asc"
	SortVisitsDesc SortKey = "visits-desc"
	SortNameAsc    SortKey = "name-asc"
)

// SortKeys lists the selectable orderings in dashboard order.
var SortKeys = []SortKey{SortDateDesc, SortDateAsc, SortVisitsDesc, SortNameAsc}

// Label is the human-readable name shown in the sort selector.
func (k SortKey) Label() string {
	switch k {
	case SortDateAsc:
		return "oldest first"
	case SortVisitsDesc:
		return "most visited"
	case SortNameAsc:
		return "name A-Z"
	default:
		return "newest first"
	}
}

// Query is the dashboard's current filter/sort/page selection. Pages are
// 1-indexed.
type Query struct {
	Search string
	Sort   SortKey
	Page   int
}

const DefaultPageSize = 10

// Slug comparison is locale-aware, matching the original localeCompare sort.
var collator = collate.New(language.English)

// View filters, sorts, and pages records. The result order is fully
// determined by the inputs; ties keep their original relative order. An
// unknown sort key behaves like date-desc — the dashboard ships a
// visits-desc option that has always fallen through to it.
func View(records []shorturl.Link, q Query, pageSize int) (page []shorturl.Link, totalPages int) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	filtered := make([]shorturl.Link, 0, len(records))
	needle := strings.ToLower(q.Search)
	for _, r := range records {
		if needle == "" ||
			strings.Contains(strings.ToLower(r.Slug), needle) ||
			strings.Contains(strings.ToLower(r.Content), needle) {
			filtered = append(filtered, r)
		}
	}

	switch q.Sort {
	case SortDateAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.Before(filtered[j].CreatedAt)
		})
	case SortNameAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return collator.CompareString(filtered[i].Slug, filtered[j].Slug) < 0
		})
	default:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
		})
	}

	totalPages = (len(filtered) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	p := q.Page
	if p < 1 {
		p = 1
	}
	start := (p - 1) * pageSize
	if start >= len(filtered) {
		return nil, totalPages
	}
	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end], totalPages
}
