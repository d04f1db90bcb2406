package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/agroconecta/marketplace-service/config"
	"github.com/agroconecta/marketplace-service/internal/controller"
	"github.com/agroconecta/marketplace-service/internal/infrastructure/tracing"
	"github.com/agroconecta/marketplace-service/internal/middleware"
	"github.com/agroconecta/marketplace-service/internal/repository"
	"github.com/agroconecta/marketplace-service/internal/service"
	"github.com/agroconecta/marketplace-service/pkg/response"
)

// requestTimeout bounds the three sequential store calls behind the filter
// endpoint, so one slow auxiliary query cannot hold a request open forever.
const requestTimeout = 15 * time.Second

type App struct {
	DB            *mongo.Database
	Config        *config.Config
	KafkaProducer *kafka.Conn
	Server        *echo.Echo
}

func (app *App) Start() {
	e := echo.New()
	app.Server = e

	if app.Config.TracingConfig.CollectorHost != "" {
		traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
		if err != nil {
			log.Error().Err(err).Msg("Failed to initialize tracing")
		} else {
			defer func() {
				if err := traceProvider.Shutdown(context.Background()); err != nil {
					log.Error().Err(err).Msg("Failed to shutdown tracing")
				}
			}()

			tracer := traceProvider.Tracer("marketplace-service")
			e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
				return func(c echo.Context) error {
					ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
					defer span.End()

					c.SetRequest(c.Request().WithContext(ctx))

					return next(c)
				}
			})
		}
	}

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
			defer cancel()

			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	})

	if app.Config.MetricsPort != "" {
		// Empty prefix so metrics aggregate across services without renaming
		e.Use(echoprometheus.NewMiddleware(""))

		go func() {
			metrics := echo.New()
			metrics.GET("/metrics", echoprometheus.NewHandler())
			if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal().Err(err).Msg("Failed to start metrics server")
			}
		}()
	}

	g := e.Group("/api")
	g.Use(middleware.Logger)

	registrationRepo := repository.CreateNewRegistrationRepository(app.DB)
	productRepo := repository.CreateNewProductRepository(app.DB)
	reservationRepo := repository.CreateNewReservationRepository(app.DB)

	registrationSvc := service.CreateRegistrationService(registrationRepo)
	productSvc := service.CreateProductService(productRepo)
	reservationSvc := service.CreateReservationService(reservationRepo, productRepo, registrationRepo, app.KafkaProducer)

	controller.CreateRegistrationController(g, registrationSvc)
	controller.CreateProductController(g, productSvc)
	controller.CreateReservationController(g, reservationSvc)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "pong", nil)
	})

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)))
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}
