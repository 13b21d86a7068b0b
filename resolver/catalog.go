package resolver

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"bustickets/entity"
)

// Normalizer is the linguistic collaborator used to embed entity names.
type Normalizer interface {
	Tokenize(ctx context.Context, text string) ([]string, error)
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Store is the slice of the record store the catalog stages from.
type Store interface {
	FindAllRoutes(ctx context.Context) ([]entity.Route, error)
	FindAllBuses(ctx context.Context) ([]entity.Bus, error)
	FindAllClients(ctx context.Context) ([]entity.Client, error)
}

type routeCandidate struct {
	route       entity.Route
	departure   []float64
	destination []float64
}

type clientCandidate struct {
	client    entity.Client
	firstName []float64
	lastName  []float64
}

// Catalog holds pre-embedded candidate sets for every resolvable entity
// kind. It is built once per session and queried with user input embeddings.
type Catalog struct {
	cities  []Candidate[string]
	buses   []Candidate[entity.Bus]
	routes  []routeCandidate
	clients []clientCandidate
}

// LoadCatalog fetches all routes, buses and clients and embeds their name
// fields through the normalizer.
func LoadCatalog(ctx context.Context, store Store, normalizer Normalizer) (*Catalog, error) {
	routes, err := store.FindAllRoutes(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load routes: %w", err)
	}

	buses, err := store.FindAllBuses(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load buses: %w", err)
	}

	clients, err := store.FindAllClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load clients: %w", err)
	}

	c := &Catalog{}

	cityNames := lo.Uniq(append(
		lo.Map(routes, func(r entity.Route, _ int) string { return r.DepartureCity }),
		lo.Map(routes, func(r entity.Route, _ int) string { return r.DestinationCity })...,
	))
	for _, name := range cityNames {
		embedding, err := normalizer.Embed(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("could not embed city %q: %w", name, err)
		}
		c.cities = append(c.cities, Candidate[string]{Embedding: embedding, Payload: name})
	}

	for _, route := range routes {
		departure, err := normalizer.Embed(ctx, route.DepartureCity)
		if err != nil {
			return nil, fmt.Errorf("could not embed departure city %q: %w", route.DepartureCity, err)
		}
		destination, err := normalizer.Embed(ctx, route.DestinationCity)
		if err != nil {
			return nil, fmt.Errorf("could not embed destination city %q: %w", route.DestinationCity, err)
		}
		c.routes = append(c.routes, routeCandidate{route: route, departure: departure, destination: destination})
	}

	for _, bus := range buses {
		embedding, err := normalizer.Embed(ctx, bus.BusNumber)
		if err != nil {
			return nil, fmt.Errorf("could not embed bus number %q: %w", bus.BusNumber, err)
		}
		c.buses = append(c.buses, Candidate[entity.Bus]{Embedding: embedding, Payload: bus})
	}

	for _, client := range clients {
		if err := c.AddClient(ctx, normalizer, client); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// AddClient embeds a freshly created client so it is resolvable within the
// same session.
func (c *Catalog) AddClient(ctx context.Context, normalizer Normalizer, client entity.Client) error {
	firstName, err := normalizer.Embed(ctx, client.FirstName)
	if err != nil {
		return fmt.Errorf("could not embed first name %q: %w", client.FirstName, err)
	}
	lastName, err := normalizer.Embed(ctx, client.LastName)
	if err != nil {
		return fmt.Errorf("could not embed last name %q: %w", client.LastName, err)
	}

	c.clients = append(c.clients, clientCandidate{client: client, firstName: firstName, lastName: lastName})
	return nil
}

// ResolveCity returns the best-matching known city name, or nil.
func (c *Catalog) ResolveCity(input []float64) (*string, float64) {
	return Resolve(input, c.cities)
}

// ResolveBus returns the best-matching known bus, or nil.
func (c *Catalog) ResolveBus(input []float64) (*entity.Bus, float64) {
	return Resolve(input, c.buses)
}

// ResolveRoute scores each route as the sum of the departure and destination
// city similarities, with the same strictly-greater replacement rule.
func (c *Catalog) ResolveRoute(input []float64) (*entity.Route, float64) {
	var best *entity.Route
	bestScore := 0.0

	for i := range c.routes {
		score := Cosine(input, c.routes[i].departure) + Cosine(input, c.routes[i].destination)
		if score > bestScore {
			best = &c.routes[i].route
			bestScore = score
		}
	}

	return best, bestScore
}

// ResolveClient scores each client as the sum of the first and last name
// similarities.
func (c *Catalog) ResolveClient(input []float64) (*entity.Client, float64) {
	var best *entity.Client
	bestScore := 0.0

	for i := range c.clients {
		score := Cosine(input, c.clients[i].firstName) + Cosine(input, c.clients[i].lastName)
		if score > bestScore {
			best = &c.clients[i].client
			bestScore = score
		}
	}

	return best, bestScore
}
