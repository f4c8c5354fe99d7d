// Package app assembles the services and the HTTP router over a key-value store.
package app

import (
	"context"
	"net/http"

	"oceanbreeze/internal/config"
	"oceanbreeze/internal/events"
	"oceanbreeze/internal/middleware"
	"oceanbreeze/internal/modules/admin"
	"oceanbreeze/internal/modules/auth"
	"oceanbreeze/internal/modules/booking"
	"oceanbreeze/internal/modules/catalog"
	"oceanbreeze/internal/modules/review"
	"oceanbreeze/internal/pkg/clock"
	"oceanbreeze/internal/pkg/idgen"
	jwtsvc "oceanbreeze/internal/pkg/jwt"
	"oceanbreeze/internal/repository"
	"oceanbreeze/internal/state"
	"oceanbreeze/internal/storage"

	"github.com/gin-gonic/gin"
)

type App struct {
	Router *gin.Engine
	State  *state.State
	Hub    *events.Hub
}

type Options struct {
	Clock clock.Clock
	IDs   idgen.Generator
}

// New loads the state from kv, seeding the default catalogue on first run,
// and builds the router. Writes to kv are announced on the hub.
func New(ctx context.Context, cfg *config.Config, kv storage.KV, opts Options) (*App, error) {
	if opts.Clock == nil {
		opts.Clock = clock.System{}
	}
	if opts.IDs == nil {
		opts.IDs = idgen.UUIDv7{}
	}

	hub := events.NewHub(cfg.CORSOrigins)
	store := repository.NewStore(storage.WithListener(kv, hub.Publish))

	st := state.New(store)
	if err := st.Load(ctx, catalog.DefaultRooms(opts.Clock.Now())); err != nil {
		return nil, err
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authHandler := auth.NewHandler(auth.NewService(st, opts.Clock, opts.IDs), j)
	catalogHandler := catalog.NewHandler(catalog.NewService(st, opts.Clock, opts.IDs))
	bookingHandler := booking.NewHandler(booking.NewService(st, opts.Clock, opts.IDs))
	reviewHandler := review.NewHandler(review.NewService(st, opts.Clock, opts.IDs))
	adminHandler := admin.NewHandler(admin.NewService(st))

	if cfg.IsProdLike() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.ErrorLogger(), middleware.RequestLogger(), middleware.CORS(cfg.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		v1.GET("/ws", hub.Handle)

		// public
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)
		bookingHandler.RegisterPublicRoutes(v1)

		// protected
		protected := v1.Group("", middleware.JWTAuth(j, st))
		authHandler.RegisterProtectedRoutes(protected)
		bookingHandler.RegisterProtectedRoutes(protected)
		reviewHandler.RegisterRoutes(v1, protected)

		// admin
		adminGroup := protected.Group("/admin", middleware.AdminOnly())
		catalogHandler.RegisterAdminRoutes(adminGroup)
		adminHandler.RegisterRoutes(adminGroup)
	}

	return &App{Router: r, State: st, Hub: hub}, nil
}
