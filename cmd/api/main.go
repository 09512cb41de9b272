package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Mrigankar1134/DBProject/api"
	"github.com/Mrigankar1134/DBProject/internal/config"
)

const dbConnectTimeout = 10 * time.Second

func main() {
	var configFile string
	flag.StringVar(&configFile, "config", "", "path to optional JSON config file")
	flag.Parse()

	infoLog := log.New(os.Stdout, "INFO\t", log.Ldate|log.Ltime)
	errorLog := log.New(os.Stderr, "ERROR\t", log.Ldate|log.Ltime|log.Lshortfile)

	cfg, err := config.Load(configFile)
	if err != nil {
		errorLog.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbConnectTimeout)
	defer cancel()

	db, err := pgxpool.New(ctx, cfg.DSN)
	if err != nil {
		errorLog.Fatal("failed to open database pool:", err)
	}
	defer db.Close()

	if err := db.Ping(ctx); err != nil {
		errorLog.Fatal("database connection failed:", err)
	}
	infoLog.Println("connected to database")

	app := api.NewApplication(cfg, db, infoLog, errorLog)

	srv := &http.Server{
		Addr:         cfg.Address(),
		Handler:      app.Routes(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		ErrorLog:     errorLog,
	}

	serverErrors := make(chan error, 1)
	go func() {
		infoLog.Printf("starting %s server on %s", cfg.Env, srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			errorLog.Fatal("server failed:", err)
		}

	case sig := <-shutdown:
		infoLog.Println("shutdown signal received:", sig)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			srv.Close()
			errorLog.Fatal("graceful shutdown failed:", err)
		}
		infoLog.Println("server stopped gracefully")
	}
}
