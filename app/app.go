package app

import (
	"context"
	"fmt"
	"io"

	"github.com/ThreeDotsLabs/watermill/components/forwarder"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"bustickets/db"
	"bustickets/entity"
	"bustickets/http"
	"bustickets/intent"
	"bustickets/pkg/log"
	"bustickets/pubsub"
	"bustickets/pubsub/event"
	"bustickets/pubsub/outbox"
	"bustickets/resolver"
	"bustickets/session"
)

func init() {
	log.Init(logrus.InfoLevel)
}

// App wires the service: the Postgres repositories, the outbox forwarder,
// the watermill event router, the ops HTTP server and, when session I/O is
// provided, one interactive conversational session.
type App struct {
	db              *sqlx.DB
	forwarder       *forwarder.Forwarder
	watermillRouter *message.Router
	httpServer      *http.Server

	routesRepo   *db.RoutesPostgresRepository
	busesRepo    *db.BusesPostgresRepository
	clientsRepo  *db.ClientsPostgresRepository
	bookingsRepo *db.BookingsPostgresRepository
	normalizer   resolver.Normalizer

	sessionIn   io.Reader
	sessionOut  io.Writer
	sessionRole intent.Role
}

func New(
	httpAddr string,
	dbConn *sqlx.DB,
	redisClient *redis.Client,
	normalizer resolver.Normalizer,
	sessionIn io.Reader,
	sessionOut io.Writer,
	sessionRole intent.Role,
) (*App, error) {
	watermillLogger := log.NewWatermill(log.FromContext(context.Background()))

	routesRepo := db.NewRoutesPostgresRepository(dbConn)
	busesRepo := db.NewBusesPostgresRepository(dbConn)
	clientsRepo := db.NewClientsPostgresRepository(dbConn)
	bookingsRepo := db.NewBookingsPostgresRepository(dbConn)
	bookingLog := db.NewBookingLogReadModel(dbConn)

	eventsHandler := event.NewHandler(bookingLog)
	eventProcessorConfig := event.NewProcessorConfig(redisClient, watermillLogger)

	watermillRouter, err := pubsub.NewWatermillRouter(eventProcessorConfig, eventsHandler, watermillLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create watermill router: %w", err)
	}

	redisPublisher := pubsub.NewRedisPublisher(redisClient, watermillLogger)

	fwd, err := outbox.NewForwarder(dbConn.DB, redisPublisher, watermillLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create outbox forwarder: %w", err)
	}

	httpServer := http.NewServer(httpAddr, routesRepo, busesRepo, bookingLog)

	return &App{
		db:              dbConn,
		forwarder:       fwd,
		watermillRouter: watermillRouter,
		httpServer:      httpServer,
		routesRepo:      routesRepo,
		busesRepo:       busesRepo,
		clientsRepo:     clientsRepo,
		bookingsRepo:    bookingsRepo,
		normalizer:      normalizer,
		sessionIn:       sessionIn,
		sessionOut:      sessionOut,
		sessionRole:     sessionRole,
	}, nil
}

// Run blocks until the context is canceled or the interactive session
// exits; the session's exit intent shuts the whole service down.
func (a *App) Run(ctx context.Context) error {
	if err := db.InitializeDatabaseSchema(a.db); err != nil {
		return fmt.Errorf("failed to initialize database schema: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return a.forwarder.Run(ctx)
	})

	g.Go(func() error {
		return a.watermillRouter.Run(ctx)
	})

	g.Go(func() error {
		// the service is not healthy before the router is ready
		<-a.watermillRouter.Running()

		return a.httpServer.Run(ctx)
	})

	if a.sessionIn != nil {
		g.Go(func() error {
			defer cancel()

			<-a.watermillRouter.Running()

			catalog, err := resolver.LoadCatalog(ctx, catalogStore{
				routes:  a.routesRepo,
				buses:   a.busesRepo,
				clients: a.clientsRepo,
			}, a.normalizer)
			if err != nil {
				return fmt.Errorf("failed to load resolver catalog: %w", err)
			}

			sess := session.New(
				a.routesRepo,
				a.busesRepo,
				a.clientsRepo,
				a.bookingsRepo,
				catalog,
				a.normalizer,
				a.sessionIn,
				a.sessionOut,
			)

			if a.sessionRole == intent.RoleAdmin {
				return sess.RunAdmin(ctx)
			}
			return sess.RunCustomer(ctx)
		})
	}

	return g.Wait()
}

// catalogStore adapts the per-table repositories to the single loading
// surface the resolver catalog expects.
type catalogStore struct {
	routes  *db.RoutesPostgresRepository
	buses   *db.BusesPostgresRepository
	clients *db.ClientsPostgresRepository
}

func (s catalogStore) FindAllRoutes(ctx context.Context) ([]entity.Route, error) {
	return s.routes.FindAll(ctx)
}

func (s catalogStore) FindAllBuses(ctx context.Context) ([]entity.Bus, error) {
	return s.buses.FindAll(ctx)
}

func (s catalogStore) FindAllClients(ctx context.Context) ([]entity.Client, error) {
	return s.clients.FindAll(ctx)
}
