// Package gateway implements app.Runner for the gateway process.
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apphttp "github.com/chainsafe/interchain-gateway/pkg/app/http"
	"github.com/chainsafe/interchain-gateway/pkg/app/httpserver"
	"github.com/chainsafe/interchain-gateway/pkg/auth"
	"github.com/chainsafe/interchain-gateway/pkg/config"
	"github.com/chainsafe/interchain-gateway/pkg/gateway"
	gatewayservice "github.com/chainsafe/interchain-gateway/pkg/gateway/service"
	"github.com/chainsafe/interchain-gateway/pkg/its"
	itsservice "github.com/chainsafe/interchain-gateway/pkg/its/service"
	"github.com/chainsafe/interchain-gateway/pkg/kv"
	kvpg "github.com/chainsafe/interchain-gateway/pkg/kv/pg"
	"github.com/chainsafe/interchain-gateway/pkg/kv/rediskv"
	"github.com/chainsafe/interchain-gateway/pkg/message"
	"github.com/chainsafe/interchain-gateway/pkg/pgutil"
	"github.com/chainsafe/interchain-gateway/pkg/router"
	"github.com/chainsafe/interchain-gateway/pkg/verifier"
)

// Server holds configuration for the gateway process.
type Server struct {
	cfg *config.Config
}

// NewServer initializes a new gateway Server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

// Run opens the store, instantiates the gateway and the ledger from config and
// serves the HTTP API until an OS shutdown signal is received.
func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("nil config")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting interchain gateway", zap.String("store", cfg.Store.Backend))

	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}

	rpcClient, err := rpc.DialContext(ctx, cfg.Verifier.RPCURL)
	if err != nil {
		_ = closeStore()
		return fmt.Errorf("dial verifier rpc: %w", err)
	}
	closeRPC := func(context.Context) error {
		rpcClient.Close()
		return nil
	}

	verifierClient := verifier.NewClient(rpcClient, cfg.Verifier.Timeout, logger)
	gatewaySvc := gatewayservice.NewLog(
		gatewayservice.NewService(store, verifierClient, router.NewClient(), logger),
		logger,
	)
	ledger := itsservice.NewLog(itsservice.NewService(store, logger), logger)

	if err := instantiate(ctx, cfg, gatewaySvc, ledger, logger); err != nil {
		_ = closeRPC(ctx)
		_ = closeStore()
		return err
	}

	handler := newRouter(cfg, gatewaySvc, ledger, auth.NewTokenAuthority(&cfg.Auth), logger)
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// in-flight verifications may still use the rpc client until shutdown returns
	return httpserver.Serve(ctx, logger, httpServer, cfg.Shutdown.Timeout,
		closeRPC,
		func(context.Context) error { return closeStore() },
	)
}

func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (kv.TxStore, func() error, error) {
	switch cfg.Store.Backend {
	case config.StoreBackendPostgres:
		db, err := pgutil.ConnectDB(ctx, &cfg.Database,
			pgutil.WithQueryLogger(logger.Named("db"), cfg.Database.SlowQueryThreshold))
		if err != nil {
			return nil, nil, fmt.Errorf("connect gateway db: %w", err)
		}
		logger.Info("Database connection established",
			zap.String("host", cfg.Database.Host),
			zap.String("database", cfg.Database.Database))
		return kvpg.NewStore(db), db.Close, nil
	case config.StoreBackendRedis:
		client, err := rediskv.Connect(ctx, &cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		logger.Info("Redis connection established", zap.String("addr", cfg.Redis.Addr))
		return rediskv.NewStore(client, cfg.Redis.KeyPrefix), client.Close, nil
	default:
		logger.Warn("Using in-memory store, state is lost on restart")
		return kv.NewMemStore(), func() error { return nil }, nil
	}
}

// instantiate writes the configured addresses. Without them the stored
// configuration from a previous run is kept.
func instantiate(ctx context.Context, cfg *config.Config, gw gatewayservice.Service, ledger itsservice.Service, logger *zap.Logger) error {
	if cfg.Gateway.VerifierAddress != "" {
		err := gw.Instantiate(ctx, &gateway.InstantiateRequest{
			VerifierAddress: cfg.Gateway.VerifierAddress,
			RouterAddress:   cfg.Gateway.RouterAddress,
		})
		if err != nil {
			return fmt.Errorf("instantiate gateway: %w", err)
		}
	} else {
		logger.Info("No gateway addresses configured, using stored configuration")
	}

	if cfg.ITS.AxelarnetGateway != "" {
		if err := ledger.Instantiate(ctx, &its.InstantiateRequest{AxelarnetGateway: cfg.ITS.AxelarnetGateway}); err != nil {
			return fmt.Errorf("instantiate its: %w", err)
		}
	}
	return nil
}

func newRouter(
	cfg *config.Config,
	gw gatewayservice.Service,
	ledger itsservice.Service,
	authority *auth.TokenAuthority,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(apphttp.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apphttp.AccessLog(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// ready once the gateway has a configuration to route with
	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		if _, err := gw.Config(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("NOT_READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	})

	if cfg.Monitoring.Enabled {
		r.Handle("/metrics", promhttp.Handler())
		logger.Info("Metrics enabled", zap.String("path", "/metrics"))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			auth.RegisterRoutes(r, authority, logger)
		})
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(authority, logger))
			r.Route("/gateway", func(r chi.Router) {
				gatewayservice.RegisterRoutes(r, gw, logger)
			})
			r.Route("/its", func(r chi.Router) {
				itsservice.RegisterRoutes(r, ledger, message.Address(cfg.ITS.AdminAddress).Canonical(), logger)
			})
		})
	})

	return r
}
