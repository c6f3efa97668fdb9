package linkview

import "github.com/raghavdwd/folio/internal/shorturl"

// Controller owns the query state for one dashboard view. The pipeline is
// pure; the reset-to-page-1 rule on any search or sort change lives here.
type Controller struct {
	query    Query
	pageSize int
}

func NewController(pageSize int) *Controller {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Controller{
		query:    Query{Sort: SortDateDesc, Page: 1},
		pageSize: pageSize,
	}
}

func (c *Controller) Query() Query { return c.query }

// SetSearch updates the filter text and jumps back to the first page.
func (c *Controller) SetSearch(text string) {
	if text == c.query.Search {
		return
	}
	c.query.Search = text
	c.query.Page = 1
}

// SetSort updates the ordering and jumps back to the first page.
func (c *Controller) SetSort(key SortKey) {
	if key == c.query.Sort {
		return
	}
	c.query.Sort = key
	c.query.Page = 1
}

// CycleSort advances to the next sort option, wrapping around.
func (c *Controller) CycleSort() {
	for i, k := range SortKeys {
		if k == c.query.Sort {
			c.SetSort(SortKeys[(i+1)%len(SortKeys)])
			return
		}
	}
	c.SetSort(SortKeys[0])
}

// SetPage moves to the given 1-indexed page. Out-of-range values clamp at
// the next View call; negatives clamp to 1 here.
func (c *Controller) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	c.query.Page = page
}

// View runs the pipeline with the current query and clamps the page into the
// valid range so deletes on the last page never leave the view empty.
func (c *Controller) View(records []shorturl.Link) ([]shorturl.Link, int) {
	page, total := View(records, c.query, c.pageSize)
	if c.query.Page > total {
		c.query.Page = total
		page, total = View(records, c.query, c.pageSize)
	}
	return page, total
}
