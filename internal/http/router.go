package apphttp

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rienbien8/pos-frontend/internal/http/handlers"
	"github.com/rienbien8/pos-frontend/internal/http/middleware"
)

func NewRouter(l *slog.Logger, pos *handlers.POSHandler) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(l),
		middleware.Recovery(l),
		middleware.ErrorHandler(l),
	)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/session", pos.State)
		api.POST("/lookup", pos.Lookup)
		api.POST("/cart/items", pos.Append)
		api.DELETE("/cart/items/:index", pos.Remove)
		api.POST("/purchase", pos.Purchase)
		api.POST("/confirm", pos.Confirm)
		api.POST("/reset", pos.Reset)
		api.GET("/journal", pos.JournalRecent)
	}

	return r
}
