package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"

	_ "github.com/sbilibin2017/linkvault/docs"
	"github.com/sbilibin2017/linkvault/internal/handlers"
	"github.com/sbilibin2017/linkvault/internal/health"
	"github.com/sbilibin2017/linkvault/internal/jwt"
	"github.com/sbilibin2017/linkvault/internal/logger"
	"github.com/sbilibin2017/linkvault/internal/middlewares"
	"github.com/sbilibin2017/linkvault/internal/repositories"
	"github.com/sbilibin2017/linkvault/internal/services"
	"github.com/sbilibin2017/linkvault/internal/storage"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds every setting read from the environment.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	dbDriver string
	dbURL    string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	redisHost         string // empty disables the list cache
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int
	redisExpSecond    int

	kafkaBrokers []string // empty disables event publishing
	kafkaTopic   string

	grpcPort string

	jwtSecretKey string
	jwtExpSecond int
}

// databaseDSN returns DATABASE_URL when set, otherwise a Postgres DSN built
// from the POSTGRES_* settings.
func (c config) databaseDSN() string {
	if c.dbURL != "" {
		return c.dbURL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.pgUser, c.pgPassword, c.pgHost, c.pgPort, c.pgDB)
}

// @title linkvault API
// @version 1.0.0
// @description Personal bookmark manager: links organized into user-owned categories
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, database, cache, broker, gRPC, logging and JWT configuration.
// Variables already present in the environment win over the file.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Database config
	cfg.dbDriver = getEnv("DATABASE_DRIVER", "")
	cfg.dbURL = getEnv("DATABASE_URL", "")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "linkvault")
	if cfg.pgPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "")
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.redisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.redisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.redisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	if cfg.redisExpSecond, err = getInt("REDIS_EXP_SECOND", "60"); err != nil {
		return
	}

	// Kafka config
	for _, broker := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			cfg.kafkaBrokers = append(cfg.kafkaBrokers, broker)
		}
	}
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "bookmark-events")

	// gRPC config
	cfg.grpcPort = getEnv("GRPC_PORT", "50051")

	// JWT config
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.jwtExpSecond, err = getInt("JWT_EXP_SECOND", "604800"); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, the gRPC health server
// and the HTTP server, then blocks until a shutdown signal arrives.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to the database
	db, err := storage.Open(ctx, cfg.dbDriver, cfg.databaseDSN(), storage.Options{
		MaxOpenConns: cfg.pgMaxOpenConns,
		MaxIdleConns: cfg.pgMaxIdleConns,
	})
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer db.Close()
	logger.Log.Infow("Database connected", "driver", db.DriverName())

	// Connect to Redis
	var rdb *redis.Client
	if cfg.redisHost != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
			Password:     cfg.redisPassword,
			DB:           cfg.redisDB,
			PoolSize:     cfg.redisPoolSize,
			MinIdleConns: cfg.redisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		defer rdb.Close()
		logger.Log.Infow("Redis connected", "addr", rdb.Options().Addr)
	} else {
		logger.Log.Info("REDIS_HOST not set, list cache disabled")
	}

	// Kafka writer
	var writer services.KafkaWriter
	if len(cfg.kafkaBrokers) > 0 {
		kw := newKafkaWriter(cfg)
		defer kw.Close()
		writer = kw
		logger.Log.Infow("Kafka writer configured", "brokers", cfg.kafkaBrokers, "topic", cfg.kafkaTopic)
	} else {
		logger.Log.Info("KAFKA_BROKERS not set, event publishing disabled")
	}

	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// gRPC health server
	checker := health.NewChecker(db, 5*time.Second)
	grpcServer := grpc.NewServer()
	checker.Register(grpcServer)

	lis, err := net.Listen("tcp", fmt.Sprintf("%s:%s", cfg.appHost, cfg.grpcPort))
	if err != nil {
		return fmt.Errorf("gRPC listen: %w", err)
	}
	go checker.Run(ctxShutdown)

	tokens := jwt.New(
		jwt.WithSecretKey(cfg.jwtSecretKey),
		jwt.WithExpiration(time.Duration(cfg.jwtExpSecond)*time.Second),
	)
	cache := repositories.NewResourceCacheRepository(rdb, time.Duration(cfg.redisExpSecond)*time.Second)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: newRouter(db, cache, services.NewEventPublisher(writer), tokens),
	}

	// Graceful shutdown
	errChan := make(chan error, 2)

	go func() {
		logger.Log.Infof("gRPC health server listening on %s", lis.Addr())
		if err := grpcServer.Serve(lis); err != nil {
			errChan <- fmt.Errorf("gRPC server failed: %w", err)
		}
	}()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping servers...")
	case serveErr := <-errChan:
		grpcServer.Stop()
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}
	grpcServer.GracefulStop()

	logger.Log.Info("Servers stopped gracefully")
	return nil
}

// newKafkaWriter builds an asynchronous writer so publishing never holds a
// request. Delivery failures are reported through the completion callback.
func newKafkaWriter(cfg config) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.kafkaBrokers...),
		Topic:                  cfg.kafkaTopic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
		Async:                  true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Log.Errorw("failed to deliver events", "topic", cfg.kafkaTopic, "count", len(messages), "error", err)
			}
		},
	}
}

// newRouter wires repositories, services and handlers into the HTTP routes.
// Protected routes resolve the caller from the token; register runs in a
// transaction so the uniqueness check and the insert see the same state.
func newRouter(
	db *sqlx.DB,
	cache *repositories.ResourceCacheRepository,
	publisher services.Publisher,
	tokens *jwt.JWT,
) http.Handler {
	txGetter := repositories.TxGetter(middlewares.GetTxFromContext)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db, txGetter)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	categoryReadRepo := repositories.NewCategoryReadRepository(db, txGetter)
	categoryWriteRepo := repositories.NewCategoryWriteRepository(db, txGetter)
	linkReadRepo := repositories.NewLinkReadRepository(db, txGetter)
	linkWriteRepo := repositories.NewLinkWriteRepository(db, txGetter)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	categoryService := services.NewCategoryService(categoryReadRepo, categoryWriteRepo, cache, publisher)
	linkService := services.NewLinkService(linkReadRepo, linkWriteRepo, categoryReadRepo, cache, publisher)

	userID := handlers.UserIDGetter(middlewares.UserIDFromContext)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Get("/healthz", handlers.NewHealthHandler(db))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Public routes
	r.Route("/auth", func(r chi.Router) {
		r.With(middlewares.TxMiddleware(db)).Post("/register", handlers.NewRegisterHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService))
	})

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokens))

		r.Get("/categories", handlers.NewListCategoriesHandler(categoryService, userID))
		r.Post("/categories", handlers.NewCreateCategoryHandler(categoryService, userID))
		r.Put("/categories/{id}", handlers.NewUpdateCategoryHandler(categoryService, userID))
		r.Delete("/categories/{id}", handlers.NewDeleteCategoryHandler(categoryService, userID))

		r.Get("/links", handlers.NewListLinksHandler(linkService, userID))
		r.Post("/links", handlers.NewCreateLinkHandler(linkService, userID))
		r.Get("/links/{id}", handlers.NewGetLinkHandler(linkService, userID))
		r.Put("/links/{id}", handlers.NewUpdateLinkHandler(linkService, userID))
		r.Delete("/links/{id}", handlers.NewDeleteLinkHandler(linkService, userID))
	})

	return r
}
