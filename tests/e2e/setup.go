//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"resort-booking/cmd/bootstrap"
	"resort-booking/cmd/bootstrap/components"
	"resort-booking/internal/infra/db"
	"resort-booking/internal/pkg/config"
	"resort-booking/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
)

// sharedContainer starts one container per test process.
type sharedContainer struct {
	once      sync.Once
	container testcontainers.Container
	err       error
}

func (s *sharedContainer) endpoint(t *testing.T, req testcontainers.ContainerRequest, port nat.Port) (string, nat.Port) {
	t.Helper()

	s.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()
		s.container, s.err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
	})
	require.NoError(t, s.err, "failed to start %s", req.Image)

	ctx := context.Background()
	mapped, err := s.container.MappedPort(ctx, port)
	require.NoError(t, err)
	host, err := s.container.Host(ctx)
	require.NoError(t, err)
	return host, mapped
}

var (
	postgres = &sharedContainer{}
	redisSrv = &sharedContainer{}
)

func postgresRequest() testcontainers.ContainerRequest {
	return testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       "postgres",
		},
		Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=256m"},
		Cmd:   []string{"postgres", "-c", "fsync=off", "-c", "synchronous_commit=off"},
		WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
			return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port.Port())
		}).WithStartupTimeout(time.Minute),
		Labels: map[string]string{"purpose": "e2e-tests"},
	}
}

// createDatastore creates a throwaway database, migrates it and returns a
// pool plus the datastore config the app under test connects with.
func createDatastore(t *testing.T) (*pgxpool.Pool, config.DatastoreConfig) {
	t.Helper()

	host, port := postgres.endpoint(t, postgresRequest(), "5432/tcp")
	dbName := "resort_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err)
	defer admin.Close()
	_, err = admin.Exec(ctx, "CREATE DATABASE "+dbName)
	require.NoError(t, err, "failed to create test database")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, adminDSN)
		if err != nil {
			slog.Warn("drop test database: connect failed", "database", dbName, "error", err)
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+dbName+" WITH (FORCE)"); err != nil {
			slog.Warn("drop test database failed", "database", dbName, "error", err)
		}
	})

	dsCfg := config.DatastoreConfig{
		URL:          fmt.Sprintf("postgres://%s@%s:%s/%s?sslmode=disable", pgUser, host, port.Port(), dbName),
		Key:          pgPassword,
		MaxConns:     4,
		QueryTimeout: 5 * time.Second,
	}

	logger := slog.New(slog.DiscardHandler)
	pool, closePool, err := db.Connect(ctx, dsCfg, logger)
	require.NoError(t, err)
	t.Cleanup(closePool)
	require.NoError(t, db.Migrate(ctx, pool, logger), "migrations failed")

	return pool, dsCfg
}

// StartRedis returns the address of a shared redis container.
func StartRedis(t *testing.T) string {
	t.Helper()

	host, port := redisSrv.endpoint(t, testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(time.Minute),
		Labels:       map[string]string{"purpose": "e2e-tests"},
	}, "6379/tcp")

	addr := host + ":" + port.Port()
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()
	require.NoError(t, client.Ping(context.Background()).Err(), "redis not reachable")

	return addr
}

// startApp assembles the production fx graph around a test config and returns
// the router with handlers registered.
func startApp(t *testing.T, dsCfg config.DatastoreConfig, mutate ...func(*config.Config)) (*gin.Engine, config.Config) {
	t.Helper()

	cfg := config.NewTestConfig()
	cfg.Datastore = dsCfg
	for _, m := range mutate {
		m(&cfg)
	}

	var router *gin.Engine
	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.DatastoreModule,
		bootstrap.LockModule,
		components.RepositoryModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fx app failed to start")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fx app stop failed", "error", err)
		}
	})

	return router, cfg
}

// SharedSuite owns one database per suite; subtests start from empty tables.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	s.DB, s.Config.Datastore = createDatastore(t)
	s.Router, s.Config = startApp(t, s.Config.Datastore)
}

// StartApp runs a second app against the suite database with a modified
// config.
func (s *SharedSuite) StartApp(mutate ...func(*config.Config)) *gin.Engine {
	router, _ := startApp(s.T(), s.Config.Datastore, mutate...)
	return router
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "failed to reset database")
}
