package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/axend/internal/cache"
	"github.com/2beens/axend/internal/config"
	"github.com/2beens/axend/internal/db"
	"github.com/2beens/axend/internal/middleware"
	"github.com/2beens/axend/internal/telemetry/metrics"
	"github.com/2beens/axend/internal/telemetry/tracing"
	"github.com/2beens/axend/internal/tracking/clients"
	"github.com/2beens/axend/internal/tracking/goals"
	"github.com/2beens/axend/internal/tracking/measurements"
	"github.com/2beens/axend/internal/tracking/progress"
	"github.com/2beens/axend/pkg"
)

const localCacheSizeBytes = 32 * 1024 * 1024

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client
	rateLimiter middleware.RequestRateLimiter

	clientsHandler      *clients.Handler
	goalsHandler        *goals.Handler
	measurementsHandler *measurements.Handler
	progressHandler     *progress.Handler

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	PostgresPassword        string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     params.PostgresPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	} else if cfg.AutoMigrate {
		if err := db.EnsureSchema(ctx, dbPool); err != nil {
			return nil, fmt.Errorf("ensure schema: %w", err)
		}
		log.Debugln("db schema ensured")
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.NewRegistry(pgxpoolCollector)
	metricsManager := metrics.NewManager("backend", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0,
	})
	if params.HoneycombTracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "axend-backend")
	if err != nil {
		return nil, err
	}

	var progressCache cache.Cache
	switch cfg.ProgressCache {
	case config.ProgressCacheRedis:
		progressCache = cache.NewRedis(rdb, "axend:")
	case config.ProgressCacheLocal:
		progressCache = cache.NewLocal(localCacheSizeBytes)
	default:
		log.Debugln("progress snapshot cache disabled")
	}

	clientsRepo := clients.NewRepo(dbPool)
	goalsRepo := goals.NewRepo(dbPool)
	measurementsRepo := measurements.NewRepo(dbPool)

	progressService := progress.NewService(progress.NewServiceParams{
		Goals:          goalsRepo,
		Measurements:   measurementsRepo,
		Profiles:       clientsRepo,
		Cache:          progressCache,
		CacheTTL:       cfg.ProgressCacheTTL(),
		MetricsManager: metricsManager,
	})
	measurementsService := measurements.NewService(
		measurementsRepo,
		clientsRepo,
		progressService,
		metricsManager,
	)

	return &Server{
		config:      cfg,
		versionInfo: params.VersionInfo,
		dbPool:      dbPool,
		redisClient: rdb,
		rateLimiter: redis_rate.NewLimiter(rdb),

		clientsHandler:      clients.NewHandler(clientsRepo, progressService),
		goalsHandler:        goals.NewHandler(goalsRepo, progressService),
		measurementsHandler: measurements.NewHandler(measurementsService),
		progressHandler:     progress.NewHandler(progressService),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

// limited wraps a write handler with the per route rate limiter.
func (s *Server) limited(routeName string, handlerFunc http.HandlerFunc) http.Handler {
	return middleware.RateLimit(
		s.rateLimiter,
		routeName,
		s.config.WriteRateLimitAllowedPerMin,
		s.metricsManager,
	)(handlerFunc)
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("axend-router"))

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, fmt.Sprintf("axend is alive [%s]", s.versionInfo))
	}).Methods("GET").Name("liveness")

	r.Handle("/clients", s.limited("new-client", s.clientsHandler.HandleCreate)).Methods("POST", "OPTIONS").Name("new-client")
	r.HandleFunc("/clients/{clientId}/profile", s.clientsHandler.HandleGetProfile).Methods("GET", "OPTIONS").Name("get-profile")
	r.Handle("/clients/{clientId}/profile/target-weight", s.limited("set-target-weight", s.clientsHandler.HandleSetTargetWeight)).Methods("PUT", "OPTIONS").Name("set-target-weight")

	r.Handle("/clients/{clientId}/measurements", s.limited("upsert-measurement", s.measurementsHandler.HandleUpsert)).Methods("POST", "OPTIONS").Name("upsert-measurement")
	r.HandleFunc("/clients/{clientId}/measurements", s.measurementsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-measurements")
	r.HandleFunc("/clients/{clientId}/measurements/trend", s.measurementsHandler.HandleTrend).Methods("GET", "OPTIONS").Name("measurements-trend")
	r.Handle("/clients/{clientId}/measurements/{date}", s.limited("delete-measurement", s.measurementsHandler.HandleDelete)).Methods("DELETE", "OPTIONS").Name("delete-measurement")

	r.Handle("/clients/{clientId}/goals", s.limited("new-goal", s.goalsHandler.HandleCreate)).Methods("POST", "OPTIONS").Name("new-goal")
	r.HandleFunc("/clients/{clientId}/goals", s.goalsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-goals")
	r.HandleFunc("/goals/{id}", s.goalsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-goal")
	r.Handle("/goals/{id}", s.limited("update-goal", s.goalsHandler.HandleUpdate)).Methods("PUT", "OPTIONS").Name("update-goal")
	r.Handle("/goals/{id}", s.limited("delete-goal", s.goalsHandler.HandleDelete)).Methods("DELETE", "OPTIONS").Name("delete-goal")

	r.HandleFunc("/goals/{id}/progress", s.progressHandler.HandleGoalProgress).Methods("GET", "OPTIONS").Name("goal-progress")
	r.HandleFunc("/clients/{clientId}/progress", s.progressHandler.HandleClientProgress).Methods("GET", "OPTIONS").Name("client-progress")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(middleware.LimitAndDrainBody(middleware.MaxRequestBodyBytes))

	return r
}

func (s *Server) Serve(host string, port int) {
	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      s.routerSetup(),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", otelhttp.NewHandler(
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
		"metrics",
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown http server: %s", err)
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown metrics http server: %s", err)
		}
		log.Warnln("metrics server shut down")
	}

	if s.otelShutdown != nil {
		s.otelShutdown()
		log.Trace("otel shut down ...")
	}

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}
