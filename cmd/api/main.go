package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"strings"
	"time"

	"castingagency/internal/data"
	"castingagency/internal/metrics"

	"github.com/joho/godotenv"
	// import pq driver so that it can register itself with the database/sql package
	_ "github.com/lib/pq"
)

const version = "1.0.0"

// env args passed via cmd flags on app start
type config struct {
	port int
	env  string
	db   struct {
		dsn          string
		maxOpenConns int
		maxIdleConns int
		maxIdleTime  time.Duration
		migrate      bool
	}
	limiter struct {
		rps     float64
		burst   int
		enabled bool
	}
	cors struct {
		trustedOrigins []string
	}
	// an empty secret leaves every route open
	jwt struct {
		secret string
	}
}

type application struct {
	config config
	logger *slog.Logger
	models data.Models
}

func main() {
	// structured logger that writes to the standard output stream
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// values from .env only fill variables that are not already set
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Error(err.Error())
		os.Exit(1)
	}

	var cfg config

	flag.IntVar(&cfg.port, "port", 4000, "API server port")
	flag.StringVar(&cfg.env, "env", "development", "Environment (development|staging|production)")
	flag.StringVar(&cfg.db.dsn, "db-dsn", os.Getenv("DATABASE_URL"), "PostgreSQL DSN")

	// DB connection pool settings from cmd-line flags
	flag.IntVar(&cfg.db.maxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	flag.IntVar(&cfg.db.maxIdleConns, "db-max-idle-conns", 25, "PostgreSQL max idle connections")
	flag.DurationVar(&cfg.db.maxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max connection idle time")
	flag.BoolVar(&cfg.db.migrate, "db-migrate", true, "Create missing tables on startup")

	flag.Float64Var(&cfg.limiter.rps, "limiter-rps", 2, "Rate limiter maximum requests per second")
	flag.IntVar(&cfg.limiter.burst, "limiter-burst", 4, "Rate limiter maximum burst")
	flag.BoolVar(&cfg.limiter.enabled, "limiter-enabled", true, "Enable rate limiter")

	// space separated list, empty means any origin
	flag.Func("cors-trusted-origins", "Trusted CORS origins (space separated)", func(val string) error {
		cfg.cors.trustedOrigins = strings.Fields(val)
		return nil
	})

	flag.StringVar(&cfg.jwt.secret, "jwt-secret", os.Getenv("JWT_SECRET"), "HS256 secret for bearer tokens (empty disables authorization)")
	flag.Parse()

	// open a database connection pool
	// in the event of an error we log the error and exit the application immediately
	db, err := openDB(cfg)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	// close the connection pool before main() function exits
	defer db.Close()
	logger.Info("database connection pool established")

	if cfg.db.migrate {
		err = data.Migrate(context.Background(), db)
		if err != nil {
			logger.Error(err.Error())
			os.Exit(1)
		}
		logger.Info("database schema ready")
	}

	if cfg.jwt.secret == "" {
		logger.Warn("no jwt secret configured, authorization disabled")
	}

	metrics.Init()

	app := &application{
		config: cfg,
		logger: logger,
		models: data.NewModels(db),
	}

	err = app.serve()
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func openDB(cfg config) (*sql.DB, error) {
	// create an empty connection pool
	db, err := sql.Open("postgres", cfg.db.dsn)
	if err != nil {
		return nil, err
	}

	// a value less than or equal to zero means there is no limit
	db.SetMaxOpenConns(cfg.db.maxOpenConns)
	db.SetMaxIdleConns(cfg.db.maxIdleConns)
	// a value less than or equal to zero means connections are not closed due to their idle time
	db.SetConnMaxIdleTime(cfg.db.maxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// If connection couldn't be successfully established within 5 seconds then this will return an error
	err = db.PingContext(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
