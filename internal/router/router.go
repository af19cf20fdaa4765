package router

import (
	"net/http"
	"time"

	"cucharon/internal/auth"
	"cucharon/internal/menu"
	"cucharon/internal/middleware"
	"cucharon/internal/order"
	"cucharon/internal/report"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Deps struct {
	Logger      *zap.Logger
	Menus       *menu.Service
	Auth        *auth.Service
	Checkout    *order.Checkout
	CORSOrigins []string
}

func NewRouter(d Deps) *gin.Engine {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))

	if len(d.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     d.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// ───────── AUTH ─────────
	authHandler := auth.NewHandler(d.Auth)
	api.POST("/auth", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)

	// ───────── MENU ─────────
	menuHandler := menu.NewHandler(d.Menus)
	api.GET("/menu", menuHandler.Get)
	api.POST("/menu", middleware.AuthMiddleware(d.Auth.Sessions()), menuHandler.Set)

	// ───────── ORDERS ─────────
	orderHandler := order.NewHandler(d.Menus, d.Checkout)
	api.POST("/orders/preview", orderHandler.Preview)

	// ───────── CLIENT ERRORS ─────────
	api.POST("/client-errors", report.NewHandler(logger).Create)

	return r
}
