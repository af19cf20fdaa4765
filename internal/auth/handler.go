package auth

import (
	"errors"
	"strings"

	"cucharon/internal/resp"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// POST /api/auth
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest

	// a missing or unreadable body is just a wrong password
	_ = c.ShouldBindJSON(&req)

	token, err := h.service.Login(c.Request.Context(), req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			resp.Unauthorized(c, ErrInvalidCredentials.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, loginResponse{Token: token})
}

// POST /api/auth/logout
func (h *Handler) Logout(c *gin.Context) {
	token, ok := BearerToken(c.GetHeader("Authorization"))
	if !ok {
		resp.Unauthorized(c, "Authorization required")
		return
	}

	if err := h.service.Logout(c.Request.Context(), token); err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{"loggedOut": true})
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(header string) (string, bool) {
	const prefix = "Bearer "

	if !strings.HasPrefix(header, prefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(prefix):])
	if token == "" {
		return "", false
	}
	return token, true
}
