package order

import (
	"context"
	"errors"
	"time"

	"cucharon/internal/menu"
	"cucharon/internal/resp"

	"github.com/gin-gonic/gin"
)

// CatalogSource provides the catalog for a weekday, falling back to the
// built-in menu when the stored one is unavailable.
type CatalogSource interface {
	DayCatalog(ctx context.Context, day string) (*menu.Catalog, bool, error)
}

type Handler struct {
	catalogs CatalogSource
	checkout *Checkout
}

func NewHandler(catalogs CatalogSource, checkout *Checkout) *Handler {
	return &Handler{catalogs: catalogs, checkout: checkout}
}

type previewRequest struct {
	Day        string            `json:"day"`
	Quantities map[string]int    `json:"quantities"`
	Sides      map[string]string `json:"sides"`
	Send       bool              `json:"send"`
}

type previewResponse struct {
	Day      string       `json:"day"`
	Fallback bool         `json:"fallback"`
	Order    DerivedOrder `json:"order"`
	Message  string       `json:"message,omitempty"`
	Link     string       `json:"link,omitempty"`
}

// --------------------------------------------------
// POST /api/orders/preview
// --------------------------------------------------
func (h *Handler) Preview(c *gin.Context) {
	var req previewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request body")
		return
	}

	if req.Day == "" {
		req.Day = menu.DefaultDay(h.now())
	}

	catalog, fallback, err := h.catalogs.DayCatalog(c.Request.Context(), req.Day)
	if err != nil {
		if errors.Is(err, menu.ErrUnknownDay) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	sel := NewSelection()
	for id, q := range req.Quantities {
		sel.SetQuantity(id, q)
	}
	for key, name := range req.Sides {
		cat := menu.Category(key)
		if err := sel.SetSide(cat, name); err != nil {
			resp.BadRequest(c, "unknown side category: "+key)
			return
		}
		if chosen, ok := sel.sides[cat]; ok && !catalog.HasSideOption(cat, chosen) {
			resp.BadRequest(c, "unknown side option: "+chosen)
			return
		}
	}

	derived := Derive(sel.Quantities(), sel.Sides(), catalog)

	out := previewResponse{
		Day:      req.Day,
		Fallback: fallback,
		Order:    derived,
	}

	if req.Send {
		handoff, err := h.checkout.Prepare(derived, sel.Sides(), Meta{Day: req.Day})
		if err != nil {
			var w *Warning
			if errors.As(err, &w) {
				resp.Unprocessable(c, w.Code, w.Message, w.Detail)
				return
			}
			resp.ServerError(c, err)
			return
		}
		out.Message = handoff.Message
		out.Link = handoff.Link
	}

	resp.OK(c, out)
}

func (h *Handler) now() time.Time {
	if h.checkout != nil && h.checkout.Formatter != nil && h.checkout.Formatter.Now != nil {
		return h.checkout.Formatter.Now()
	}
	return time.Now()
}
