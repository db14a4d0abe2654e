package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"mintgate/internal/mint/access"
	"mintgate/internal/mint/allowlist"
	"mintgate/internal/mint/counts"
	"mintgate/internal/mint/handler"
	"mintgate/internal/mint/ledger"
	"mintgate/internal/mint/metrics"
	"mintgate/internal/mint/models"
	"mintgate/internal/mint/ports"
	"mintgate/internal/mint/registry"
	"mintgate/internal/mint/service"
	"mintgate/internal/mint/treasury"
	"mintgate/internal/platform/config"
	"mintgate/internal/platform/httpserver"
	"mintgate/internal/platform/logger"
	platformredis "mintgate/internal/platform/redis"
	"mintgate/pkg/domain"
	"mintgate/pkg/platform/events"
	eventskafka "mintgate/pkg/platform/events/kafka"
	"mintgate/pkg/platform/events/publisher"
	eventsmem "mintgate/pkg/platform/events/store/memory"
	adminmw "mintgate/pkg/platform/middleware/admin"
	"mintgate/pkg/platform/middleware/auth"
	request "mintgate/pkg/platform/middleware/request"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal/mint packages.
func main() {
	log := logger.New()
	if err := run(log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	admin, err := domain.ParseAddress(cfg.Server.AdminAddress)
	if err != nil {
		return errors.New("MINTGATE_ADMIN_ADDRESS must be a valid wallet address")
	}

	allowlistStore, closeAllowlist, err := buildAllowlistStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeAllowlist()

	countStore, closeCounts, err := buildCountStore(cfg, log)
	if err != nil {
		return err
	}
	defer closeCounts()

	eventStore, closeEvents, err := buildEventStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeEvents()

	pubOpts := []publisher.Option{publisher.WithLogger(log)}
	if cfg.EventBuffer > 0 {
		pubOpts = append(pubOpts, publisher.WithAsyncBuffer(cfg.EventBuffer))
	}
	pub := publisher.NewPublisher(eventStore, pubOpts...)
	defer pub.Close()

	svc, err := service.New(
		models.CollectionConfig{
			MaxSupply:            cfg.Collection.MaxSupply,
			MintPrice:            cfg.Collection.MintPrice,
			MaxMintPerAddress:    cfg.Collection.MaxMintPerAddress,
			PublicMintEnabled:    cfg.Collection.PublicMintEnabled,
			WhitelistMintEnabled: cfg.Collection.WhitelistMintEnabled,
			BaseURI:              cfg.Collection.BaseURI,
		},
		ledger.New(cfg.Collection.MaxSupply),
		allowlistStore,
		countStore,
		registry.NewInMemory(),
		treasury.New(treasury.LogTransferrer(log)),
		service.WithLogger(log),
		service.WithPublisher(pub),
		service.WithMetrics(metrics.New()),
		service.WithAccessController(access.NewStaticAdmin(admin)),
	)
	if err != nil {
		return err
	}

	h := handler.New(svc, admin, log)
	r := chi.NewRouter()
	r.Use(request.RequestID)
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireWallet(cfg.Server.JWTSigningKey, log))
		h.Register(r)
	})
	h.RegisterQueries(r)
	r.Group(func(r chi.Router) {
		r.Use(adminmw.RequireAdminToken(cfg.Server.AdminToken, log))
		h.RegisterAdmin(r)
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	srv := httpserver.New(cfg.Server.Addr, r)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting mintgate", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func buildAllowlistStore(ctx context.Context, cfg config.Config, log *slog.Logger) (ports.AllowlistStore, func(), error) {
	if cfg.PostgresURL == "" {
		log.Info("allowlist store: in-memory")
		return allowlist.NewInMemoryStore(), func() {}, nil
	}

	db, err := sql.Open("postgres", cfg.PostgresURL)
	if err != nil {
		return nil, nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}

	store := allowlist.NewPostgres(db)
	if err := store.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}
	log.Info("allowlist store: postgres")
	return store, func() { db.Close() }, nil
}

func buildCountStore(cfg config.Config, log *slog.Logger) (ports.CountStore, func(), error) {
	client, err := platformredis.New(cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	if client == nil {
		log.Info("count store: in-memory")
		return counts.NewInMemoryStore(), func() {}, nil
	}
	log.Info("count store: redis")
	return counts.NewRedis(client.Client), func() { client.Close() }, nil
}

func buildEventStore(ctx context.Context, cfg config.Config, log *slog.Logger) (events.Store, func(), error) {
	if len(cfg.KafkaBrokers) == 0 {
		log.Info("event store: in-memory")
		return eventsmem.NewInMemoryStore(), func() {}, nil
	}

	sink, err := eventskafka.New(ctx, cfg.KafkaBrokers, cfg.KafkaTopic)
	if err != nil {
		return nil, nil, err
	}
	log.Info("event store: kafka", "topic", cfg.KafkaTopic)
	return sink, func() { sink.Close() }, nil
}
