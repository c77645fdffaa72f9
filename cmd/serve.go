package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dalythu/REST-API/internal/auth"
	"github.com/dalythu/REST-API/internal/db/bunx"
	"github.com/dalythu/REST-API/internal/repository"
	"github.com/dalythu/REST-API/internal/server"
	"github.com/dalythu/REST-API/internal/telemetry"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the course API server",
	Long:  `Starts the HTTP server with the user and course REST endpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := bunx.NewDB(cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer bunx.Close(db)

		log.Printf("Connected to database")

		userRepo := repository.NewBunUserRepository(db)
		courseRepo := repository.NewBunCourseRepository(db)
		resolver := auth.NewResolver(userRepo)
		metrics := telemetry.NewCollector()

		corsOpts := server.DefaultCORSOptions()
		if len(cfg.CORSOrigins) > 0 {
			corsOpts.AllowedOrigins = cfg.CORSOrigins
		}

		r := server.NewRouter(server.RouterOptions{
			Users:       userRepo,
			Courses:     courseRepo,
			Resolver:    resolver,
			Metrics:     metrics,
			CORSOptions: &corsOpts,
		})

		srv := &http.Server{
			Addr:         cfg.ServerAddr,
			Handler:      r,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		// Start server in goroutine
		serverErrors := make(chan error, 1)
		go func() {
			log.Printf("Starting server on %s", cfg.ServerAddr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Wait for interrupt signal
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			log.Printf("Received signal %v, shutting down gracefully", sig)

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				srv.Close()
				return fmt.Errorf("graceful shutdown failed: %w", err)
			}

			log.Printf("Server stopped")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
