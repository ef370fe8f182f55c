package server

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	config "github.com/ali-320/EduTrack-CC-Assignment-2/configs"
	"github.com/ali-320/EduTrack-CC-Assignment-2/database"
	"github.com/ali-320/EduTrack-CC-Assignment-2/jobs"
	"github.com/ali-320/EduTrack-CC-Assignment-2/logging"
	"github.com/ali-320/EduTrack-CC-Assignment-2/middleware"
	"github.com/ali-320/EduTrack-CC-Assignment-2/secrets"
)

// Service describes one deployable binary: its config defaults and the resource routes it mounts.
type Service struct {
	Defaults config.Defaults
	Short    string
	Version  string
	Mount    func(app *fiber.App, db database.Acquirer, guard fiber.Handler)
}

func Command(svc Service) *cobra.Command {
	var (
		port    string
		envFile string
	)

	rootCmd := &cobra.Command{
		Use:          svc.Defaults.Name,
		Short:        svc.Short,
		Long:         svc.Short + "\n\n" + config.Describe(),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(svc.Defaults, envFile)
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}
			return serve(cmd, svc, cfg)
		},
	}

	rootCmd.Flags().StringVarP(&port, "port", "p", "", "HTTP listen port (overrides PORT)")
	rootCmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", svc.Defaults.Name, svc.Version)
		},
	})

	return rootCmd
}

func serve(cmd *cobra.Command, svc Service, cfg *config.Config) error {
	logging.Apply(cfg.LogLevel, cfg.Service, cfg.LogFile)

	resolver := secrets.NewResolver(cfg.Secret, secrets.NewSecretManager())
	acquirer := database.NewPostgresAcquirer(cfg.Database, resolver)

	if cfg.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is not set; write endpoints are unauthenticated")
	}

	app := New(cfg)
	svc.Mount(app, acquirer, middleware.Protected(cfg.JWTSecret))

	if cfg.CheckSchedule != "" {
		scheduler, err := jobs.Schedule(cfg.CheckSchedule, jobs.NewConnectivityCheck(acquirer))
		if err != nil {
			return err
		}
		scheduler.Start()
		defer scheduler.Stop()
		log.Info().Str("schedule", cfg.CheckSchedule).Msg("Database connectivity check scheduled")
	}

	log.Info().
		Str("version", svc.Version).
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Str("db_host", cfg.Database.Host).
		Str("db_name", cfg.Database.Name).
		Bool("password_file", cfg.Secret.PasswordFile != "").
		Msg("Starting service")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return Run(ctx, app, cfg.Port)
}
