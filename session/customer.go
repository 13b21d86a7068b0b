package session

import (
	"context"
	"errors"
	"strings"

	"bustickets/entity"
	"bustickets/intent"
	"bustickets/metrics"
)

// RunCustomer processes customer commands until an exit intent or the end
// of input.
func (s *Session) RunCustomer(ctx context.Context) error {
	s.printf("Ви ввійшли як користувач.")

	for {
		line, ok := s.prompt("Користувач> ")
		if !ok {
			return nil
		}
		if line == "" {
			continue
		}

		lemmas, err := s.normalizer.Tokenize(ctx, strings.ToLower(line))
		if err != nil {
			s.logger.WithError(err).Error("could not tokenize command")
			s.printf("Сервіс розпізнавання недоступний. Спробуйте ще раз.")
			continue
		}
		s.printf("Розпізнані леми команди: %v", lemmas)

		action := intent.Route(lemmas, intent.RoleCustomer)
		metrics.CommandsProcessed.WithLabelValues(intent.RoleCustomer.String(), action.String()).Inc()

		var actionErr error
		switch action {
		case intent.ActionBookTicket:
			actionErr = s.bookTicket(ctx)
		case intent.ActionCancelTicket:
			actionErr = s.cancelTicket(ctx)
		case intent.ActionBusInfo:
			actionErr = s.busInfo(ctx)
		case intent.ActionCityInfo:
			actionErr = s.cityInfo(ctx)
		case intent.ActionRouteInfo:
			actionErr = s.routeInfo(ctx)
		case intent.ActionExit:
			s.printf("Вихід з профілю користувача.")
			return nil
		default:
			s.printf("Команда не розпізнана. Спробуйте ще раз.")
		}

		if actionErr != nil {
			s.logger.WithError(actionErr).WithField("action", action.String()).Error("action failed")
			s.printf("Операція не вдалася. Спробуйте пізніше.")
		}
	}
}

// bookTicket runs the full booking workflow: resolve cities, pick the
// earliest bus with free seats, resolve or create the client, book.
func (s *Session) bookTicket(ctx context.Context) error {
	departureCity, ok := s.prompt("Звідки виїжджаєте: ")
	if !ok {
		return nil
	}
	destinationCity, ok := s.prompt("Куди прямуєте: ")
	if !ok {
		return nil
	}
	tripDate, ok := s.promptDate("Введіть дату поїздки (рррр-мм-дд): ")
	if !ok {
		return nil
	}

	departureCity = s.resolveCity(ctx, departureCity)
	destinationCity = s.resolveCity(ctx, destinationCity)

	buses, err := s.buses.FindAvailable(ctx, departureCity, destinationCity, tripDate)
	if err != nil {
		return err
	}
	if len(buses) == 0 {
		s.printf("Немає доступних автобусів на цей маршрут і дату.")
		return nil
	}
	bus := buses[0]

	firstName, ok := s.prompt("Введіть ваше ім'я: ")
	if !ok {
		return nil
	}
	lastName, ok := s.prompt("Введіть ваше прізвище: ")
	if !ok {
		return nil
	}

	client, err := s.lookupClient(ctx, firstName, lastName)
	if err != nil {
		return err
	}
	if client == nil {
		return nil
	}

	ticketID, err := s.bookings.Book(ctx, entity.BookingRequest{
		ClientID:      client.ClientID,
		BusID:         bus.BusID,
		TripDateID:    bus.TripDateID,
		DepartureTime: bus.DepartureTime,
		Price:         bus.Price,
	})
	if errors.Is(err, entity.ErrNoAvailableSeats) {
		metrics.BookingsFailed.Inc()
		s.printf("Немає доступних місць на цей рейс.")
		return nil
	}
	if err != nil {
		return err
	}

	metrics.BookingsMade.Inc()
	s.printf("Квиток замовлений! Ваш номер квитка: %s", ticketID)
	s.printf("Автобус: %s, Відправлення о %s, Ціна квитка: %s", bus.BusNumber, bus.DepartureTime, bus.Price)
	return nil
}

// lookupClient finds the client by exact name pair first, then by fuzzy
// resolution against the catalog, and finally falls back to creating a new
// record from prompted details.
func (s *Session) lookupClient(ctx context.Context, firstName, lastName string) (*entity.Client, error) {
	client, err := s.clients.FindByName(ctx, firstName, lastName)
	if err == nil {
		return &client, nil
	}
	if !errors.Is(err, entity.ErrNotFound) {
		return nil, err
	}

	if resolved := s.resolveClient(ctx, firstName+" "+lastName); resolved != nil {
		s.printf("Знайдено клієнта: %s %s", resolved.FirstName, resolved.LastName)
		return resolved, nil
	}

	s.printf("Клієнт не знайдений. Будь ласка, додайте свої дані.")
	return s.collectClient(ctx, firstName, lastName)
}

func (s *Session) cancelTicket(ctx context.Context) error {
	ticketID, ok := s.prompt("Введіть номер квитка: ")
	if !ok {
		return nil
	}

	found, err := s.bookings.Cancel(ctx, ticketID)
	if err != nil {
		return err
	}

	if !found {
		s.printf("Квиток не знайдений.")
		return nil
	}

	metrics.TicketsCanceled.Inc()
	s.printf("Квиток успішно скасовано.")
	return nil
}
