package tests

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bustickets/app"
	"bustickets/db"
	"bustickets/entity"
	"bustickets/gateway"
	"bustickets/intent"
)

const httpAddr = ":8091"

// TestComponent_BookAndCancel drives the whole service end to end: a
// scripted customer session books the last seat, the outbox forwarder moves
// the event through redis into the booking log, the ticket is canceled and
// the session exit shuts everything down.
func TestComponent_BookAndCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dbConn, err := sqlx.Open("postgres", os.Getenv("POSTGRES_URL"))
	require.NoError(t, err)
	defer dbConn.Close()

	require.NoError(t, db.InitializeDatabaseSchema(dbConn))

	routeID, err := db.NewRoutesPostgresRepository(dbConn).Store(ctx, entity.Route{
		DepartureCity:   "Київ",
		DestinationCity: "Львів",
		Price:           "300.00",
	})
	require.NoError(t, err)

	_, err = db.NewTripDatesPostgresRepository(dbConn).Store(ctx, entity.TripDate{
		RouteID:  routeID,
		TripDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	busID, err := db.NewBusesPostgresRepository(dbConn).Store(ctx, entity.Bus{
		BusNumber:      "B12",
		RouteID:        routeID,
		DepartureTime:  "08:30",
		TotalSeats:     40,
		AvailableSeats: 1,
	})
	require.NoError(t, err)

	_, err = db.NewClientsPostgresRepository(dbConn).Store(ctx, entity.Client{
		FirstName: "Іван",
		LastName:  "Петренко",
		BirthDate: "1990-01-01",
		Email:     "ivan@example.com",
		Phone:     "+380501112233",
	})
	require.NoError(t, err)

	redisOptions, err := redis.ParseURL(os.Getenv("REDIS_URL"))
	require.NoError(t, err)
	redisClient := redis.NewClient(redisOptions)
	defer redisClient.Close()

	sessionIn, sessionInput := io.Pipe()

	a, err := app.New(httpAddr, dbConn, redisClient, &gateway.NormalizerMock{}, sessionIn, io.Discard, intent.RoleCustomer)
	require.NoError(t, err)

	runErr := make(chan error, 1)
	go func() {
		runErr <- a.Run(ctx)
	}()

	waitForHttpServer(t)

	_, err = fmt.Fprint(sessionInput, "купити квиток\nКиїв\nЛьвів\n2026-06-01\nІван\nПетренко\n")
	require.NoError(t, err)

	var booking entity.BookingLogEntry
	require.Eventually(t, func() bool {
		for _, b := range getBookings(t) {
			if b.BusNumber == "B12" && b.CanceledAt == nil {
				booking = b
				return true
			}
		}
		return false
	}, 15*time.Second, 250*time.Millisecond, "booked event never reached the booking log")

	assert.Equal(t, 1, booking.SeatNumber)
	assert.Equal(t, "300.00", booking.Price)

	_, err = fmt.Fprintf(sessionInput, "скасувати квиток\n%s\n", booking.TicketID)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		for _, b := range getBookings(t) {
			if b.TicketID == booking.TicketID && b.CanceledAt != nil {
				return true
			}
		}
		return false
	}, 15*time.Second, 250*time.Millisecond, "canceled event never reached the booking log")

	bus, err := db.NewBusesPostgresRepository(dbConn).Get(ctx, busID)
	require.NoError(t, err)
	assert.Equal(t, 1, bus.AvailableSeats)

	// The farewell ends the session and takes the whole service with it.
	_, err = fmt.Fprint(sessionInput, "бувай\n")
	require.NoError(t, err)
	require.NoError(t, sessionInput.Close())

	select {
	case err := <-runErr:
		if err != nil {
			assert.ErrorIs(t, err, context.Canceled)
		}
	case <-time.After(15 * time.Second):
		t.Fatal("service did not shut down after session exit")
	}
}

func waitForHttpServer(t *testing.T) {
	t.Helper()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://localhost" + httpAddr + "/health")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 15*time.Second, 50*time.Millisecond, "HTTP server did not start")
}

func getBookings(t *testing.T) []entity.BookingLogEntry {
	t.Helper()

	resp, err := http.Get("http://localhost" + httpAddr + "/bookings")
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var entries []entity.BookingLogEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil
	}
	return entries
}
