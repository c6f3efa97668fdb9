package linkview

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/raghavdwd/folio/internal/shorturl"
)

func makeLinks(n int) []shorturl.Link {
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	links := make([]shorturl.Link, n)
	for i := range links {
		links[i] = shorturl.Link{
			Slug:        fmt.Sprintf("slug-%02d", i),
			Content:     fmt.Sprintf("https://example.com/page-%d", i),
			ContentType: "url",
			CreatedAt:   base.Add(time.Duration(i) * time.Hour),
			Visits:      i * 3,
		}
	}
	return links
}

func TestView_FilterMatchesSlugOrContent(t *testing.T) {
	links := []shorturl.Link{
		{Slug: "Blog", Content: "https://blog.example.com", CreatedAt: time.Now()},
		{Slug: "repo", Content: "https://github.com/raghavdwd", CreatedAt: time.Now()},
		{Slug: "misc", Content: "https://example.com/BLOG-archive", CreatedAt: time.Now()},
	}

	page, _ := View(links, Query{Search: "blog", Page: 1}, 10)
	if len(page) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(page))
	}
	for _, l := range page {
		hay := strings.ToLower(l.Slug + " " + l.Content)
		if !strings.Contains(hay, "blog") {
			t.Fatalf("result %q does not match the query", l.Slug)
		}
	}

	page, _ = View(links, Query{Search: "", Page: 1}, 10)
	if len(page) != 3 {
		t.Fatalf("empty search must match everything, got %d", len(page))
	}

	page, _ = View(links, Query{Search: "zzz", Page: 1}, 10)
	if len(page) != 0 {
		t.Fatalf("expected no matches, got %d", len(page))
	}
}

func TestView_SortOrders(t *testing.T) {
	links := makeLinks(5)

	page, _ := View(links, Query{Sort: SortDateAsc, Page: 1}, 10)
	for i := 1; i < len(page); i++ {
		if page[i].CreatedAt.Before(page[i-1].CreatedAt) {
			t.Fatalf("date-asc out of order at %d", i)
		}
	}

	desc, _ := View(links, Query{Sort: SortDateDesc, Page: 1}, 10)
	asc, _ := View(links, Query{Sort: SortDateAsc, Page: 1}, 10)
	for i := range desc {
		if desc[i].Slug != asc[len(asc)-1-i].Slug {
			t.Fatalf("date-desc is not the reverse of date-asc at %d", i)
		}
	}

	named, _ := View(links, Query{Sort: SortNameAsc, Page: 1}, 10)
	for i := 1; i < len(named); i++ {
		if named[i].Slug < named[i-1].Slug {
			t.Fatalf("name-asc out of order at %d: %s before %s", i, named[i-1].Slug, named[i].Slug)
		}
	}
}

func TestView_UnknownSortFallsBackToDateDesc(t *testing.T) {
	links := makeLinks(6)

	fallback, _ := View(links, Query{Sort: SortVisitsDesc, Page: 1}, 10)
	def, _ := View(links, Query{Sort: SortDateDesc, Page: 1}, 10)
	if len(fallback) != len(def) {
		t.Fatalf("length mismatch: %d vs %d", len(fallback), len(def))
	}
	for i := range def {
		if fallback[i].Slug != def[i].Slug {
			t.Fatalf("visits-desc should fall through to date-desc, differs at %d", i)
		}
	}
}

func TestView_Deterministic(t *testing.T) {
	links := makeLinks(30)
	q := Query{Search: "page", Sort: SortNameAsc, Page: 2}

	a, atot := View(links, q, 7)
	b, btot := View(links, q, 7)
	if atot != btot || len(a) != len(b) {
		t.Fatalf("same inputs produced different shapes")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same inputs produced different order at %d", i)
		}
	}
}

func TestView_SortStabilityOnTies(t *testing.T) {
	ts := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	links := []shorturl.Link{
		{Slug: "first", CreatedAt: ts},
		{Slug: "second", CreatedAt: ts},
		{Slug: "third", CreatedAt: ts},
	}
	page, _ := View(links, Query{Sort: SortDateDesc, Page: 1}, 10)
	if page[0].Slug != "first" || page[1].Slug != "second" || page[2].Slug != "third" {
		t.Fatalf("ties must keep original order, got %s %s %s", page[0].Slug, page[1].Slug, page[2].Slug)
	}
}

func TestView_PaginationInvariant(t *testing.T) {
	links := makeLinks(23)

	_, total := View(links, Query{Sort: SortNameAsc, Page: 1}, 10)
	if total != 3 {
		t.Fatalf("expected 3 pages for 23 records, got %d", total)
	}

	var all []shorturl.Link
	for p := 1; p <= total; p++ {
		page, tp := View(links, Query{Sort: SortNameAsc, Page: p}, 10)
		if tp != total {
			t.Fatalf("total pages changed between pages: %d vs %d", tp, total)
		}
		all = append(all, page...)
	}
	if len(all) != len(links) {
		t.Fatalf("concatenated pages have %d records, want %d", len(all), len(links))
	}
	seen := map[string]bool{}
	for _, l := range all {
		if seen[l.Slug] {
			t.Fatalf("duplicate record %s across pages", l.Slug)
		}
		seen[l.Slug] = true
	}

	// Page 1 under name-asc holds the 10 lexicographically smallest slugs.
	page1, _ := View(links, Query{Sort: SortNameAsc, Page: 1}, 10)
	if len(page1) != 10 {
		t.Fatalf("expected 10 records on page 1, got %d", len(page1))
	}
	for i, l := range page1 {
		want := fmt.Sprintf("slug-%02d", i)
		if l.Slug != want {
			t.Fatalf("page 1 position %d: expected %s, got %s", i, want, l.Slug)
		}
	}
}

func TestView_EmptyStillOnePage(t *testing.T) {
	_, total := View(nil, Query{Page: 1}, 10)
	if total != 1 {
		t.Fatalf("expected minimum of 1 page, got %d", total)
	}

	_, total = View(makeLinks(5), Query{Search: "no-such", Page: 1}, 10)
	if total != 1 {
		t.Fatalf("expected 1 page when nothing matches, got %d", total)
	}
}

func TestView_PageBeyondRangeIsEmpty(t *testing.T) {
	page, total := View(makeLinks(5), Query{Page: 9}, 10)
	if total != 1 {
		t.Fatalf("expected 1 total page, got %d", total)
	}
	if len(page) != 0 {
		t.Fatalf("expected empty page beyond range, got %d records", len(page))
	}
}
