// Package cmd contains the cobra commands for the course API server.
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/dalythu/REST-API/cmd/users"
	"github.com/dalythu/REST-API/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "courseapi",
	Short: "Course REST API server",
	Long: `Course API server exposes user accounts and their owned courses over
HTTP, guarded by Basic Auth credential verification and per-course
ownership authorization.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if cfg.Debug {
			log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("db-url", "", "Database connection URL (env: DATABASE_URL)")
	rootCmd.PersistentFlags().String("server-addr", "", "Server bind address (env: SERVER_ADDR)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging (env: DEBUG)")

	rootCmd.AddCommand(users.UsersCmd)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
