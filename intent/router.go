// Package intent routes lemmatized commands to session actions by
// keyword-set matching.
package intent

type Role int

const (
	RoleAdmin Role = iota
	RoleCustomer
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleCustomer:
		return "customer"
	default:
		return "unknown"
	}
}

type Action int

const (
	ActionUnrecognized Action = iota
	ActionAddClient
	ActionAddRoute
	ActionDeleteRoute
	ActionListClients
	ActionListRoutes
	ActionBusInfo
	ActionCityInfo
	ActionRouteInfo
	ActionBookTicket
	ActionCancelTicket
	ActionExit
)

func (a Action) String() string {
	switch a {
	case ActionAddClient:
		return "add_client"
	case ActionAddRoute:
		return "add_route"
	case ActionDeleteRoute:
		return "delete_route"
	case ActionListClients:
		return "list_clients"
	case ActionListRoutes:
		return "list_routes"
	case ActionBusInfo:
		return "bus_info"
	case ActionCityInfo:
		return "city_info"
	case ActionRouteInfo:
		return "route_info"
	case ActionBookTicket:
		return "book_ticket"
	case ActionCancelTicket:
		return "cancel_ticket"
	case ActionExit:
		return "exit"
	default:
		return "unrecognized"
	}
}

// rule selects an action when all lemmas of allOf are present and, if anyOf
// is non-empty, at least one of its lemmas is present too. Booking and
// cancellation carry their verb alternatives in anyOf and the ticket object
// in allOf, so a bare verb without its object does not match.
type rule struct {
	action Action
	anyOf  []string
	allOf  []string
}

var farewells = []string{"вихід", "бувай", "прощай", "побачення"}

// Rules are evaluated in order, most specific first, so overlapping keyword
// sets cannot shadow each other.
var adminRules = []rule{
	{action: ActionAddClient, allOf: []string{"додати", "клієнт"}},
	{action: ActionAddRoute, allOf: []string{"додати", "маршрут"}},
	{action: ActionDeleteRoute, allOf: []string{"видалити", "маршрут"}},
	{action: ActionListClients, allOf: []string{"переглянути", "клієнт"}},
	{action: ActionListRoutes, allOf: []string{"переглянути", "маршрут"}},
	{action: ActionBusInfo, allOf: []string{"інформація", "автобус"}},
	{action: ActionCityInfo, allOf: []string{"інформація", "місто"}},
	{action: ActionRouteInfo, allOf: []string{"інформація", "маршрут"}},
	{action: ActionExit, anyOf: farewells},
}

var customerRules = []rule{
	{action: ActionBookTicket, anyOf: []string{"купити", "замовити"}, allOf: []string{"квиток"}},
	{action: ActionCancelTicket, anyOf: []string{"скасувати", "відмінити"}, allOf: []string{"квиток"}},
	{action: ActionBusInfo, allOf: []string{"інформація", "автобус"}},
	{action: ActionCityInfo, allOf: []string{"інформація", "місто"}},
	{action: ActionRouteInfo, allOf: []string{"інформація", "маршрут"}},
	{action: ActionExit, anyOf: farewells},
}

// Route dispatches a lemma sequence to the first matching action of the
// role. Matching is set membership: duplicates and order do not matter.
func Route(lemmas []string, role Role) Action {
	present := make(map[string]struct{}, len(lemmas))
	for _, lemma := range lemmas {
		present[lemma] = struct{}{}
	}

	rules := customerRules
	if role == RoleAdmin {
		rules = adminRules
	}

	for _, r := range rules {
		if r.matches(present) {
			return r.action
		}
	}

	return ActionUnrecognized
}

func (r rule) matches(present map[string]struct{}) bool {
	for _, lemma := range r.allOf {
		if _, ok := present[lemma]; !ok {
			return false
		}
	}

	if len(r.anyOf) == 0 {
		return true
	}
	for _, lemma := range r.anyOf {
		if _, ok := present[lemma]; ok {
			return true
		}
	}
	return false
}
