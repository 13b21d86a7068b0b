package tests

import (
	"context"
	"os"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	rediscontainer "github.com/testcontainers/testcontainers-go/modules/redis"

	"bustickets/db"
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	postgresContainer, postgresURL := db.StartPostgresContainer()
	os.Setenv("POSTGRES_URL", postgresURL)

	redisContainer, err := rediscontainer.RunContainer(ctx,
		testcontainers.WithImage("docker.io/redis:7"),
	)
	if err != nil {
		panic(err)
	}
	redisURL, err := redisContainer.ConnectionString(ctx)
	if err != nil {
		panic(err)
	}
	os.Setenv("REDIS_URL", redisURL)

	code := m.Run()

	_ = redisContainer.Terminate(ctx)
	_ = postgresContainer.Terminate(ctx)
	os.Exit(code)
}
