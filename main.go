package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/pollwidget/cliparse"
	"github.com/danielhkuo/pollwidget/db"
	"github.com/danielhkuo/pollwidget/router"
	"github.com/danielhkuo/pollwidget/store"
)

// driverName maps the -t flag onto the registered sql driver.
func driverName(databaseType string) string {
	if databaseType == "postgres" {
		return "postgres"
	}
	return "sqlite"
}

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Pick the store: in-memory unless a database URL was given
	var pollStore store.Store
	if cfg.DatabaseURL == "" {
		pollStore = store.NewMemory(cfg.Question, cfg.Options)
		slog.Info("Using in-memory store", "question", cfg.Question)
	} else {
		dbConn, err := sql.Open(driverName(cfg.DatabaseType), cfg.DatabaseURL)
		if err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		defer dbConn.Close()

		// Verify connection
		if err := dbConn.Ping(); err != nil {
			slog.Error("database ping failed", "error", err)
			os.Exit(1)
		}

		// Create schema (tables)
		if err := db.CreateSchema(dbConn); err != nil {
			slog.Error("schema creation failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Database schema ready")

		pollStore, err = store.NewSQL(dbConn, cfg.Question, cfg.Options)
		if err != nil {
			slog.Error("store setup failed", "error", err)
			os.Exit(1)
		}
	}

	// Create router
	mux := router.NewRouter(pollStore)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
