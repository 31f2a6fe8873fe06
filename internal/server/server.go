package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/victornm/themequiz/internal/api"
	"github.com/victornm/themequiz/internal/catalog"
	"github.com/victornm/themequiz/internal/event"
	"github.com/victornm/themequiz/internal/leaderboard"
	"github.com/victornm/themequiz/internal/session"
	"github.com/victornm/themequiz/internal/telemetry"
)

const (
	CatalogEmbedded = "embedded"
	CatalogFile     = "file"
	CatalogPostgres = "postgres"

	LeaderboardMemory = "memory"
	LeaderboardRedis  = "redis"
)

type Config struct {
	HTTP struct {
		Port int32
	}

	GRPC struct {
		// Port 0 disables the gRPC server.
		Port int32
	}

	Catalog struct {
		// Source is one of embedded, file or postgres.
		Source string
		File   string
	}

	Leaderboard struct {
		// Backend is one of memory or redis.
		Backend string
		Size    int
	}

	Redis struct {
		Leaderboard RedisConfig
		// Pubsub is optional. Without addresses, leaderboard updates are only streamed over WebSocket.
		Pubsub RedisConfig
	}

	Postgres struct {
		Catalog PostgresConfig
	}
}

type RedisConfig struct {
	Addrs  []string
	Pass   string
	Prefix string
}

type PostgresConfig struct {
	Addr string
	User string
	Pass string
	Name string
}

// DSN returns the connection URL of the database.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable", c.User, c.Pass, c.Addr, c.Name)
}

// DefaultConfig runs everything in process on the standard ports.
func DefaultConfig() Config {
	var c Config
	c.HTTP.Port = 8080
	c.GRPC.Port = 8081
	c.Catalog.Source = CatalogEmbedded
	c.Leaderboard.Backend = LeaderboardMemory
	c.Leaderboard.Size = leaderboard.DefaultSize
	c.Redis.Leaderboard.Prefix = "local:leaderboard"
	c.Redis.Pubsub.Prefix = "local:pubsub"
	return c
}

type Server struct {
	c Config

	eb *event.Bus

	infra struct {
		redis struct {
			leaderboard redis.UniversalClient
			pubsub      redis.UniversalClient
		}

		postgres struct {
			catalog *pgxpool.Pool
		}
	}

	catalog *catalog.Catalog
	metrics *prometheus.Registry

	service struct {
		session     *session.Service
		leaderboard *leaderboard.Service
	}

	http *http.Server
	grpc *grpc.Server
}

func Init(c Config) (_ *Server, err error) {
	s := &Server{c: c}

	s.eb = event.NewBus()

	defer func() {
		if err != nil {
			s.eb.Stop()
			s.closeInfra()
		}
	}()

	if err := s.initInfra(); err != nil {
		return nil, fmt.Errorf("server: init infra: %w", err)
	}

	if err := s.initCatalog(); err != nil {
		return nil, fmt.Errorf("server: init catalog: %w", err)
	}

	if err := s.initService(); err != nil {
		return nil, fmt.Errorf("server: init service: %w", err)
	}

	s.initAPI()
	return s, nil
}

func (s *Server) initInfra() error {
	if err := s.initRedis(); err != nil {
		return fmt.Errorf("redis: %w", err)
	}

	if err := s.initPostgres(); err != nil {
		return fmt.Errorf("postgres: %w", err)
	}

	return nil
}

func (s *Server) initRedis() error {
	connect := func(name string, c RedisConfig) (redis.UniversalClient, error) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		r := redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs:    c.Addrs,
			Password: c.Pass,
		})

		if err := telemetry.MonitorRedis(name, r); err != nil {
			_ = r.Close()
			return nil, err
		}

		if err := r.Ping(ctx).Err(); err != nil {
			_ = r.Close()
			return nil, err
		}

		return r, nil
	}

	var err error
	if s.c.Leaderboard.Backend == LeaderboardRedis {
		s.infra.redis.leaderboard, err = connect("leaderboard", s.c.Redis.Leaderboard)
		if err != nil {
			return fmt.Errorf("leaderboard: %w", err)
		}
	}

	if len(s.c.Redis.Pubsub.Addrs) > 0 {
		s.infra.redis.pubsub, err = connect("pubsub", s.c.Redis.Pubsub)
		if err != nil {
			return fmt.Errorf("pubsub: %w", err)
		}
	}

	return nil
}

func (s *Server) initPostgres() (err error) {
	if s.c.Catalog.Source != CatalogPostgres {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cc, err := pgxpool.ParseConfig(s.c.Postgres.Catalog.DSN())
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	db, err := pgxpool.NewWithConfig(ctx, cc)
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return fmt.Errorf("catalog: %w", err)
	}

	s.infra.postgres.catalog = db
	return nil
}

func (s *Server) initCatalog() (err error) {
	switch s.c.Catalog.Source {
	case CatalogEmbedded, "":
		s.catalog, err = catalog.Builtin()
	case CatalogFile:
		s.catalog, err = catalog.LoadFile(s.c.Catalog.File)
	case CatalogPostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.catalog, err = catalog.LoadPostgres(ctx, s.infra.postgres.catalog)
	default:
		return fmt.Errorf("unknown catalog source %q", s.c.Catalog.Source)
	}
	if err != nil {
		return err
	}

	slog.Info("server: catalog loaded", "source", s.c.Catalog.Source, "quizzes", len(s.catalog.List()))
	return nil
}

func (s *Server) initService() error {
	var lbStore leaderboard.Store
	switch s.c.Leaderboard.Backend {
	case LeaderboardMemory, "":
		lbStore = leaderboard.NewMemoryStore(s.c.Leaderboard.Size)
	case LeaderboardRedis:
		lbStore = leaderboard.NewRedisStore(leaderboard.RedisStoreConfig{
			Redis:  s.infra.redis.leaderboard,
			Prefix: s.c.Redis.Leaderboard.Prefix,
			Size:   s.c.Leaderboard.Size,
		})
	default:
		return fmt.Errorf("unknown leaderboard backend %q", s.c.Leaderboard.Backend)
	}

	s.service.leaderboard = leaderboard.NewService(leaderboard.Config{
		EventBus: s.eb,
		Store:    lbStore,
	})

	s.service.session = session.NewService(session.Config{
		Catalog:     s.catalog,
		Store:       session.NewMemoryStore(session.MemoryStoreConfig{Catalog: s.catalog}),
		EventBus:    s.eb,
		Leaderboard: s.service.leaderboard,
	})

	return nil
}

func (s *Server) initAPI() {
	s.metrics = prometheus.NewRegistry()
	s.metrics.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	telemetry.NewQuizMetrics(s.metrics, s.eb)

	e := gin.New()
	e.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics, promhttp.HandlerOpts{})))
	pprof.Register(e, "/debug/pprof")
	e.Use(telemetry.GinLogger(slog.Default()), gin.Recovery())

	if s.c.GRPC.Port != 0 {
		s.grpc = grpc.NewServer(telemetry.GRPCServerInterceptor(slog.Default()))
	}

	c := api.Config{
		GRPC:         s.grpc,
		EventBus:     s.eb,
		Catalog:      s.catalog,
		Session:      s.service.session,
		Leaderboard:  s.service.leaderboard,
		PubsubPrefix: s.c.Redis.Pubsub.Prefix,
	}
	if s.infra.redis.pubsub != nil {
		c.Redis = s.infra.redis.pubsub
	}

	api.New(c).RegisterHTTP(e.Group("/api"))

	s.http = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.c.HTTP.Port),
		Handler:           e,
		ReadHeaderTimeout: 60 * time.Second,
	}
}

// Handler returns the HTTP handler serving the API, metrics and pprof.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

func (s *Server) Start() {
	ctx := context.TODO()

	var eg errgroup.Group

	if s.grpc != nil {
		lis, err := net.Listen("tcp", fmt.Sprintf(":%d", s.c.GRPC.Port))
		if err != nil {
			slog.ErrorContext(ctx, "grpc server: listen failed", "error", err)
			panic(err)
		}

		eg.Go(func() error {
			slog.InfoContext(ctx, fmt.Sprintf("server: gRPC listening on port %d", s.c.GRPC.Port))
			return s.grpc.Serve(lis)
		})
	}

	eg.Go(func() error {
		slog.InfoContext(ctx, fmt.Sprintf("server: HTTP listening on port %d", s.c.HTTP.Port))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	err := eg.Wait()
	if err != nil {
		slog.ErrorContext(ctx, "server: shutdown with error", "error", err)
	}
}

func (s *Server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if s.grpc != nil {
		s.grpc.GracefulStop()
	}
	if err := s.http.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "server: shutdown HTTP failed", "error", err)
	}

	s.eb.Stop()
	s.closeInfra()

	slog.InfoContext(ctx, "server: shutdown completed")
}

func (s *Server) closeInfra() {
	for _, r := range []redis.UniversalClient{s.infra.redis.leaderboard, s.infra.redis.pubsub} {
		if r != nil {
			_ = r.Close()
		}
	}
	if s.infra.postgres.catalog != nil {
		s.infra.postgres.catalog.Close()
	}
}
