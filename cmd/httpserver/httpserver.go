// Package httpserver manages server creation and api routing.
package httpserver

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/accountdelivery"
	"github.com/go-petr/pet-ledger/internal/ledger"
	"github.com/go-petr/pet-ledger/internal/middleware"
	"github.com/go-petr/pet-ledger/internal/transferdelivery"
	"github.com/go-petr/pet-ledger/pkg/configpkg"
	"github.com/go-petr/pet-ledger/pkg/currencypkg"
	"github.com/go-petr/pet-ledger/pkg/web"
)

// ErrRouteNotFound is returned for requests that match no route.
var ErrRouteNotFound = errors.New("route not found")

var (
	registerOnce sync.Once
	registerErr  error
)

// registerValidators adds custom rules to gin's shared validator. The validator
// is not safe for registration while requests are bound, so it happens once.
func registerValidators() error {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			if err := v.RegisterValidation("currency", currencypkg.ValidCurrency); err != nil {
				registerErr = errors.New("cannot register currency validator")
			}
		}
	})

	return registerErr
}

// Server holds the ledger, handlers router and configuration.
type Server struct {
	Ledger   *ledger.Store
	Engine   *gin.Engine
	Config   configpkg.Config
	Registry *prometheus.Registry
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type serving the given ledger.
func New(store *ledger.Store, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	if err := registerValidators(); err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	if err := reg.Register(ledger.NewCollector(store)); err != nil {
		return nil, errors.New("cannot register ledger collector")
	}

	if err := reg.Register(collectors.NewGoCollector()); err != nil {
		return nil, errors.New("cannot register go collector")
	}

	metrics := middleware.NewMetrics(reg)

	accountHandler := accountdelivery.NewHandler(store)
	transferHandler := transferdelivery.NewHandler(store)

	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORS(config.CORSOrigin, config.CORSMaxAge))
	engine.Use(metrics.Handler())

	engine.GET("/health", health)
	engine.GET(config.MetricsPath, gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	api := engine.Group("/api/v1")

	api.GET("/account/:owner", accountHandler.Get)
	api.GET("/accounts", accountHandler.List)
	api.POST("/account/register", accountHandler.Create)
	api.POST("/accounts/transfer", transferHandler.Create)

	engine.NoRoute(func(gctx *gin.Context) {
		gctx.JSON(http.StatusNotFound, web.Error(ErrRouteNotFound))
	})

	server := &Server{
		Ledger:   store,
		Engine:   engine,
		Config:   config,
		Registry: reg,
	}

	return server, nil
}

func health(gctx *gin.Context) {
	gctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
