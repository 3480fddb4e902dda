package httpserver

import (
	"time"

	"github.com/coprra/price-compare/internal/core/ports"
	customMiddleware "github.com/coprra/price-compare/internal/infrastructure/httpserver/middleware"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type ServerDeps struct {
	ComparisonService ports.ComparisonService
	AlertService      ports.AlertService
	ProductRepo       ports.ProductRepository
	CategoryRepo      ports.CategoryRepository
	CurrencyRepo      ports.CurrencyRepository
	HealthCheckers    []ports.HealthChecker
}

type Server struct {
	echo           *echo.Echo
	config         *ServerConfig
	logger         *logrus.Logger
	comparisonSvc  ports.ComparisonService
	alertSvc       ports.AlertService
	productRepo    ports.ProductRepository
	categoryRepo   ports.CategoryRepository
	currencyRepo   ports.CurrencyRepository
	middleware     *customMiddleware.MiddlewareCollection
	healthCheckers []ports.HealthChecker
}

func NewServer(serverConfig *ServerConfig, logger *logrus.Logger, deps ServerDeps) *Server {
	e := echo.New()

	server := &Server{
		echo:           e,
		config:         serverConfig,
		logger:         logger,
		comparisonSvc:  deps.ComparisonService,
		alertSvc:       deps.AlertService,
		productRepo:    deps.ProductRepo,
		categoryRepo:   deps.CategoryRepo,
		currencyRepo:   deps.CurrencyRepo,
		healthCheckers: deps.HealthCheckers,
		middleware: customMiddleware.NewMiddlewareCollection(
			logger,
			GetRequestsTotal(),
			GetRequestDuration(),
		),
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}
