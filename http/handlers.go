package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) GetRoutes(c echo.Context) error {
	routes, err := s.routesRepo.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, routes)
}

func (s *Server) GetBuses(c echo.Context) error {
	buses, err := s.busesRepo.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, buses)
}

func (s *Server) GetBookings(c echo.Context) error {
	bookings, err := s.bookingLog.AllBookings(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}
