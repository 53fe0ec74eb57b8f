// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// Window describes one requested page of an offset-paginated list.
// Page is zero-based; the window covers records [Page*Size, Page*Size+Size).
type Window struct {
	Page int
	Size int
}

// Parse extracts the "page" and "size" query parameters. The second return
// is false when pagination was not requested — either parameter missing or
// unparseable — in which case callers return the whole collection. A
// negative page clamps to 0; a non-positive size counts as unrequested.
func Parse(r *http.Request) (Window, bool) {
	pageStr := query.Get(r, "page")
	sizeStr := query.Get(r, "size")
	if pageStr == "" || sizeStr == "" {
		return Window{}, false
	}

	page, err := strconv.Atoi(pageStr)
	if err != nil {
		return Window{}, false
	}
	size, err := strconv.Atoi(sizeStr)
	if err != nil || size <= 0 {
		return Window{}, false
	}
	if page < 0 {
		page = 0
	}
	return Window{Page: page, Size: size}, true
}

// Skip returns the offset for Find().SetSkip().
func (w Window) Skip() int64 { return int64(w.Page) * int64(w.Size) }

// Limit returns the window size for Find().SetLimit().
func (w Window) Limit() int64 { return int64(w.Size) }
