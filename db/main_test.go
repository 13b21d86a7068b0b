package db

import (
	"context"
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	container, connStr := StartPostgresContainer()
	os.Setenv("POSTGRES_URL", connStr)

	code := m.Run()

	_ = container.Terminate(context.Background())
	os.Exit(code)
}
