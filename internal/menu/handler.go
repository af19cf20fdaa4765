package menu

import (
	"errors"
	"io"

	"cucharon/internal/resp"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /api/menu
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	doc, err := h.service.GetMenu(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, doc)
}

// --------------------------------------------------
// POST /api/menu (admin, bearer token)
// --------------------------------------------------
func (h *Handler) Set(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		resp.BadRequest(c, "invalid request body")
		return
	}

	doc, err := ParseDocument(body)
	if err != nil {
		resp.BadRequest(c, ErrInvalidDocument.Error())
		return
	}

	saved, err := h.service.SetMenu(c.Request.Context(), doc)
	if err != nil {
		if errors.Is(err, ErrInvalidDocument) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, saved)
}
