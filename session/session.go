// Package session implements the line-based conversational loops for the
// administrator and customer roles.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"bustickets/entity"
	"bustickets/resolver"
)

type RoutesRepository interface {
	Store(ctx context.Context, route entity.Route) (int64, error)
	Delete(ctx context.Context, routeID int64) error
	FindAll(ctx context.Context) ([]entity.Route, error)
	FindFiltered(ctx context.Context, departureCity, destinationCity string) ([]entity.Route, error)
	FindByCity(ctx context.Context, city string) ([]entity.Route, error)
}

type BusesRepository interface {
	FindAll(ctx context.Context) ([]entity.Bus, error)
	FindByNumber(ctx context.Context, busNumber string) ([]entity.Bus, error)
	FindAvailable(ctx context.Context, departureCity, destinationCity, tripDate string) ([]entity.AvailableBus, error)
}

type ClientsRepository interface {
	Store(ctx context.Context, client entity.Client) (int64, error)
	FindAll(ctx context.Context) ([]entity.Client, error)
	FindByName(ctx context.Context, firstName, lastName string) (entity.Client, error)
}

type BookingEngine interface {
	Book(ctx context.Context, request entity.BookingRequest) (string, error)
	Cancel(ctx context.Context, ticketID string) (bool, error)
}

// Session holds everything one conversational session needs: the store
// handles, the booking engine, the staged candidate catalog and the line
// I/O. There is no package-level state.
type Session struct {
	routes     RoutesRepository
	buses      BusesRepository
	clients    ClientsRepository
	bookings   BookingEngine
	catalog    *resolver.Catalog
	normalizer resolver.Normalizer
	in         *bufio.Scanner
	out        io.Writer
	logger     *logrus.Entry
}

func New(
	routes RoutesRepository,
	buses BusesRepository,
	clients ClientsRepository,
	bookings BookingEngine,
	catalog *resolver.Catalog,
	normalizer resolver.Normalizer,
	in io.Reader,
	out io.Writer,
) *Session {
	return &Session{
		routes:     routes,
		buses:      buses,
		clients:    clients,
		bookings:   bookings,
		catalog:    catalog,
		normalizer: normalizer,
		in:         bufio.NewScanner(in),
		out:        out,
		logger:     logrus.NewEntry(logrus.StandardLogger()),
	}
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format+"\n", args...)
}

// prompt writes the label and blocks until a line arrives. The second
// result is false when the input is exhausted, which ends the session.
func (s *Session) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// promptPrice re-prompts until it gets a valid non-negative decimal, so
// malformed operator input never reaches the store layer.
func (s *Session) promptPrice(label string) (string, bool) {
	for {
		raw, ok := s.prompt(label)
		if !ok {
			return "", false
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil || value < 0 {
			s.printf("Некоректна ціна. Спробуйте ще раз.")
			continue
		}
		return strconv.FormatFloat(value, 'f', 2, 64), true
	}
}

func (s *Session) promptDate(label string) (string, bool) {
	for {
		raw, ok := s.prompt(label)
		if !ok {
			return "", false
		}
		if _, err := time.Parse("2006-01-02", raw); err != nil {
			s.printf("Некоректна дата. Формат: рррр-мм-дд.")
			continue
		}
		return raw, true
	}
}

func (s *Session) promptInt64(label string) (int64, bool) {
	for {
		raw, ok := s.prompt(label)
		if !ok {
			return 0, false
		}
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			s.printf("Некоректне число. Спробуйте ще раз.")
			continue
		}
		return value, true
	}
}

// resolveCity snaps free-form city input to the closest known city name.
// Input that resolves to nothing is passed through unchanged.
func (s *Session) resolveCity(ctx context.Context, input string) string {
	if input == "" {
		return input
	}

	embedding, err := s.normalizer.Embed(ctx, input)
	if err != nil {
		s.logger.WithError(err).Warn("could not embed city input")
		return input
	}

	city, score := s.catalog.ResolveCity(embedding)
	if city == nil {
		return input
	}

	s.logger.WithFields(logrus.Fields{"input": input, "city": *city, "score": score}).
		Debug("resolved city")
	return *city
}

// resolveBusNumber snaps free-form bus label input to a known bus number.
func (s *Session) resolveBusNumber(ctx context.Context, input string) string {
	if input == "" {
		return input
	}

	embedding, err := s.normalizer.Embed(ctx, input)
	if err != nil {
		s.logger.WithError(err).Warn("could not embed bus input")
		return input
	}

	bus, _ := s.catalog.ResolveBus(embedding)
	if bus == nil {
		return input
	}
	return bus.BusNumber
}

// resolveClient matches a noisy name against the known clients; a nil
// result is not an error, it triggers the create-client fallback.
func (s *Session) resolveClient(ctx context.Context, fullName string) *entity.Client {
	embedding, err := s.normalizer.Embed(ctx, fullName)
	if err != nil {
		s.logger.WithError(err).Warn("could not embed client name")
		return nil
	}

	client, _ := s.catalog.ResolveClient(embedding)
	return client
}
