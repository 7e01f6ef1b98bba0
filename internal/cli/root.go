package cli

import (
	"context"
	"fmt"

	"feedback_app/internal/config"
	"feedback_app/internal/logger"
	"feedback_app/internal/repository"
	"feedback_app/internal/repository/db"
	"feedback_app/internal/service"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var cfgFile string
	state := &cliState{}

	root := &cobra.Command{
		Use:          "feedback_app",
		Short:        "Feedback web application",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			state.cfg = cfg
			return nil
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is configs/config.yml)")

	root.AddCommand(newServeCmd(state), newUsersCmd(state))
	return root
}

// cliState carries the loaded config from the root command to subcommands.
type cliState struct {
	cfg *config.Config
}

// app holds everything a command needs and releases it on Close.
type app struct {
	log      *logger.Logger
	db       *sqlx.DB
	redis    *redis.Client
	services *service.Service
}

// initApp opens storage and wires repositories into services.
func initApp(ctx context.Context, cfg *config.Config, log *logger.Logger) (*app, error) {
	conn, err := db.InitDB(cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	a := &app{log: log, db: conn}

	repos := repository.NewRepository(conn)
	if cfg.Session.Store == config.StoreRedis {
		a.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := a.redis.Ping(ctx).Err(); err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to connect to redis %q: %w", cfg.Redis.Addr, err)
		}
		repos.Sessions = repository.NewSessionRedis(a.redis)
	}

	a.services = service.NewService(repos, service.SessionOptions{
		Secret: cfg.Session.Secret,
		TTL:    cfg.Session.TTL,
	}, log)
	return a, nil
}

func (a *app) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Errorw("failed to close redis", "err", err)
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Errorw("failed to close database", "err", err)
		}
	}
}
