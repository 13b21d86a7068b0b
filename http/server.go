package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"bustickets/entity"
	"bustickets/pkg/log"
)

type RoutesRepository interface {
	FindAll(ctx context.Context) ([]entity.Route, error)
}

type BusesRepository interface {
	FindAll(ctx context.Context) ([]entity.Bus, error)
}

type BookingLog interface {
	AllBookings(ctx context.Context) ([]entity.BookingLogEntry, error)
}

// Server is the read-only ops surface: health, metrics and inventory
// listings. The conversational sessions stay line-based; nothing here
// mutates the store.
type Server struct {
	addr       string
	e          *echo.Echo
	routesRepo RoutesRepository
	busesRepo  BusesRepository
	bookingLog BookingLog
}

func NewServer(
	addr string,
	routesRepo RoutesRepository,
	busesRepo BusesRepository,
	bookingLog BookingLog,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Recover())
	e.Use(otelecho.Middleware("bustickets"))

	server := &Server{
		addr:       addr,
		e:          e,
		routesRepo: routesRepo,
		busesRepo:  busesRepo,
		bookingLog: bookingLog,
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.GET("/routes", server.GetRoutes)
	e.GET("/buses", server.GetBuses)
	e.GET("/bookings", server.GetBookings)

	return server
}

func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		err := s.e.Shutdown(context.Background())
		if err != nil {
			log.FromContext(ctx).WithError(err).Error("failed to shutdown HTTP server")
		}
	}()

	log.FromContext(ctx).WithField("addr", s.addr).Info("[HTTP] server listening")

	err := s.e.Start(s.addr)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
