package session

import (
	"context"

	"bustickets/entity"
)

// Info actions shared by both roles.

func (s *Session) busInfo(ctx context.Context) error {
	busNumber, ok := s.prompt("Введіть номер автобуса (або залиште порожнім для всіх): ")
	if !ok {
		return nil
	}

	var (
		buses []entity.Bus
		err   error
	)
	if busNumber == "" {
		buses, err = s.buses.FindAll(ctx)
	} else {
		buses, err = s.buses.FindByNumber(ctx, s.resolveBusNumber(ctx, busNumber))
	}
	if err != nil {
		return err
	}

	if len(buses) == 0 {
		s.printf("Немає інформації про автобуси.")
		return nil
	}

	s.printf("\nДоступні автобуси:")
	for _, bus := range buses {
		s.printf("Номер автобуса: %s, Відправлення: %s, Всього місць: %d, Доступних місць: %d",
			bus.BusNumber, bus.DepartureTime, bus.TotalSeats, bus.AvailableSeats)
	}
	return nil
}

func (s *Session) cityInfo(ctx context.Context) error {
	cityName, ok := s.prompt("Введіть назву міста: ")
	if !ok {
		return nil
	}
	cityName = s.resolveCity(ctx, cityName)

	routes, err := s.routes.FindByCity(ctx, cityName)
	if err != nil {
		return err
	}

	if len(routes) == 0 {
		s.printf("Немає доступних маршрутів для міста %s.", cityName)
		return nil
	}

	s.printf("\nМаршрути, що відправляються з або прибувають до міста %s:", cityName)
	for _, route := range routes {
		s.printf("Звідки: %s, Куди: %s, Ціна: %s", route.DepartureCity, route.DestinationCity, route.Price)
	}
	return nil
}

func (s *Session) routeInfo(ctx context.Context) error {
	departureCity, ok := s.prompt("Введіть назву міста відправлення (або залиште порожнім): ")
	if !ok {
		return nil
	}
	destinationCity, ok := s.prompt("Введіть назву міста призначення (або залиште порожнім): ")
	if !ok {
		return nil
	}

	if departureCity != "" {
		departureCity = s.resolveCity(ctx, departureCity)
	}
	if destinationCity != "" {
		destinationCity = s.resolveCity(ctx, destinationCity)
	}

	routes, err := s.routes.FindFiltered(ctx, departureCity, destinationCity)
	if err != nil {
		return err
	}

	if len(routes) == 0 {
		s.printf("Немає доступних маршрутів.")
		return nil
	}

	s.printf("\nДоступні маршрути:")
	for _, route := range routes {
		s.printf("Звідки: %s, Куди: %s, Ціна: %s", route.DepartureCity, route.DestinationCity, route.Price)
	}
	return nil
}
