package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olegkh/airport-api/api"
	"github.com/olegkh/airport-api/config"
	"github.com/olegkh/airport-api/internal/auth"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Handlers struct {
	Flights   *api.FlightHandler
	Orders    *api.OrderHandler
	Reference *api.ReferenceHandler
}

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, authManager *auth.Manager, handlers Handlers) error {
	router := NewRouter(cfg, authManager, handlers)

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

// NewRouter wires the route groups: public reads, staff-gated writes and
// authenticated order routes.
func NewRouter(cfg *config.Config, authManager *auth.Manager, handlers Handlers) *gin.Engine {
	router := gin.Default()

	apiGroup := router.Group("/api")
	handlers.Reference.Register(apiGroup)
	handlers.Flights.Register(apiGroup.Group("/flights"))

	staff := apiGroup.Group("", authManager.Authenticate(), auth.RequireStaff())
	handlers.Reference.RegisterStaff(staff)
	handlers.Flights.RegisterStaff(staff.Group("/flights"))

	orders := apiGroup.Group("/orders", authManager.Authenticate())
	handlers.Orders.Register(orders)

	if cfg.HTTP.DocsFile != "" {
		router.StaticFile("/docs/openapi.json", cfg.HTTP.DocsFile)
		router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/docs/openapi.json"))))
	}

	return router
}
