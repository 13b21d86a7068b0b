package session

import (
	"context"
	"errors"
	"strings"

	"bustickets/entity"
	"bustickets/intent"
	"bustickets/metrics"
)

// RunAdmin processes administrator commands until an exit intent or the end
// of input. Store failures are reported and the loop survives them.
func (s *Session) RunAdmin(ctx context.Context) error {
	s.printf("Ви ввійшли як адміністратор.")

	for {
		line, ok := s.prompt("Адмін> ")
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

		action := intent.Route(lemmas, intent.RoleAdmin)
		metrics.CommandsProcessed.WithLabelValues(intent.RoleAdmin.String(), action.String()).Inc()

		var actionErr error
		switch action {
		case intent.ActionAddClient:
			actionErr = s.addClient(ctx)
		case intent.ActionAddRoute:
			actionErr = s.addRoute(ctx)
		case intent.ActionDeleteRoute:
			actionErr = s.deleteRoute(ctx)
		case intent.ActionListClients:
			actionErr = s.listClients(ctx)
		case intent.ActionListRoutes:
			actionErr = s.listRoutes(ctx)
		case intent.ActionBusInfo:
			actionErr = s.busInfo(ctx)
		case intent.ActionCityInfo:
			actionErr = s.cityInfo(ctx)
		case intent.ActionRouteInfo:
			actionErr = s.routeInfo(ctx)
		case intent.ActionExit:
			s.printf("Вихід з профілю адміністратора.")
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

func (s *Session) addClient(ctx context.Context) error {
	firstName, ok := s.prompt("Введіть ім'я клієнта: ")
	if !ok {
		return nil
	}
	lastName, ok := s.prompt("Введіть прізвище клієнта: ")
	if !ok {
		return nil
	}

	client, err := s.collectClient(ctx, firstName, lastName)
	if err != nil {
		return err
	}
	if client == nil {
		return nil
	}

	s.printf("Клієнт %s %s доданий!", client.FirstName, client.LastName)
	return nil
}

// collectClient prompts for the remaining client fields, stores the record
// and registers it in the resolver catalog.
func (s *Session) collectClient(ctx context.Context, firstName, lastName string) (*entity.Client, error) {
	birthDate, ok := s.promptDate("Введіть дату народження (рррр-мм-дд): ")
	if !ok {
		return nil, nil
	}
	email, ok := s.prompt("Введіть електронну пошту: ")
	if !ok {
		return nil, nil
	}
	phone, ok := s.prompt("Введіть номер телефону: ")
	if !ok {
		return nil, nil
	}

	client := entity.Client{
		FirstName: firstName,
		LastName:  lastName,
		BirthDate: birthDate,
		Email:     email,
		Phone:     phone,
	}

	clientID, err := s.clients.Store(ctx, client)
	if err != nil {
		return nil, err
	}
	client.ClientID = clientID

	if err := s.catalog.AddClient(ctx, s.normalizer, client); err != nil {
		s.logger.WithError(err).Warn("could not add client to catalog")
	}

	return &client, nil
}

func (s *Session) addRoute(ctx context.Context) error {
	departureCity, ok := s.prompt("Звідки вирушає маршрут: ")
	if !ok {
		return nil
	}
	destinationCity, ok := s.prompt("Куди прямує маршрут: ")
	if !ok {
		return nil
	}
	price, ok := s.promptPrice("Введіть ціну квитка: ")
	if !ok {
		return nil
	}

	_, err := s.routes.Store(ctx, entity.Route{
		DepartureCity:   departureCity,
		DestinationCity: destinationCity,
		Price:           price,
	})
	if err != nil {
		return err
	}

	s.printf("Маршрут з %s до %s доданий!", departureCity, destinationCity)
	return nil
}

func (s *Session) deleteRoute(ctx context.Context) error {
	if err := s.listRoutes(ctx); err != nil {
		return err
	}

	routeID, ok := s.promptInt64("Введіть ID маршруту для видалення: ")
	if !ok {
		return nil
	}

	err := s.routes.Delete(ctx, routeID)
	if errors.Is(err, entity.ErrNotFound) {
		s.printf("Маршрут %d не знайдений.", routeID)
		return nil
	}
	if err != nil {
		return err
	}

	s.printf("Маршрут %d видалений!", routeID)
	return nil
}

func (s *Session) listClients(ctx context.Context) error {
	clients, err := s.clients.FindAll(ctx)
	if err != nil {
		return err
	}

	s.printf("\nКлієнти:")
	for _, client := range clients {
		s.printf("ID: %d, Ім'я: %s, Прізвище: %s", client.ClientID, client.FirstName, client.LastName)
	}
	return nil
}

func (s *Session) listRoutes(ctx context.Context) error {
	routes, err := s.routes.FindAll(ctx)
	if err != nil {
		return err
	}

	s.printf("\nМаршрути:")
	for _, route := range routes {
		s.printf("ID: %d, Звідки: %s, Куди: %s, Ціна: %s",
			route.RouteID, route.DepartureCity, route.DestinationCity, route.Price)
	}
	return nil
}
