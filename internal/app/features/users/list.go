// internal/app/features/users/list.go
package users

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/herorider/hero-rider-api/internal/app/system/paging"
	"github.com/herorider/hero-rider-api/internal/app/system/respond"
	"github.com/herorider/hero-rider-api/internal/app/system/timeouts"
)

// pagedUsers is the response shape when pagination is requested.
type pagedUsers struct {
	Count int64    `json:"count"`
	Users []bson.M `json:"users"`
}

// ServeList handles GET /users. With ?page and ?size it returns a window
// of size records at offset page*size plus the total count; without them
// it returns every user as a bare array. No sort order is guaranteed —
// documents come back in engine order.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	window, paged := paging.Parse(r)
	if !paged {
		users, err := h.Store.List(ctx)
		if err != nil {
			respond.Internal(w, h.Log, "list users failed", err)
			return
		}
		respond.JSON(w, http.StatusOK, users)
		return
	}

	users, count, err := h.Store.ListPage(ctx, window.Skip(), window.Limit())
	if err != nil {
		respond.Internal(w, h.Log, "list users page failed", err)
		return
	}
	respond.JSON(w, http.StatusOK, pagedUsers{Count: count, Users: users})
}
