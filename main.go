package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/auth"
	intconfig "github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/config"
	router "github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/http"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/http/handlers"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/repositories"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/storage"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/utils"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFiles []string

	load := func() (intconfig.Env, func(), error) {
		env := intconfig.LoadEnv(envFiles...)
		logger, err := utils.InitLogger(env.IsDevelopment())
		if err != nil {
			return env, nil, fmt.Errorf("init logger: %w", err)
		}
		return env, func() { _ = logger.Sync() }, nil
	}

	root := &cobra.Command{
		Use:           "snm",
		Short:         "SNM medical staff registration backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, done, err := load()
			if err != nil {
				return err
			}
			defer done()
			return serve(cmd.Context(), env)
		},
	}
	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "env files to load (default .env)")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE:  root.RunE,
	})

	root.AddCommand(&cobra.Command{
		Use:   "db-check",
		Short: "Connect to the database and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, done, err := load()
			if err != nil {
				return err
			}
			defer done()

			if _, err := intconfig.ConnectDB(env); err != nil {
				zap.L().Error("database check failed", zap.String("db", env.DBName), zap.Error(err))
				return err
			}
			defer intconfig.CloseDB()
			fmt.Fprintf(cmd.OutOrStdout(), "database %s reachable at %s:%s\n", env.DBName, env.DBHost, env.DBPort)
			return nil
		},
	})

	return root
}

func serve(ctx context.Context, env intconfig.Env) error {
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	pool, err := intconfig.ConnectDB(env)
	if err != nil {
		zap.L().Error("database connection failed", zap.Error(err))
		return err
	}
	defer intconfig.CloseDB()
	zap.L().Info("database connected", zap.String("db", env.DBName), zap.String("host", env.DBHost))

	api := &handlers.API{
		Search:         repositories.SearchRepository{DB: pool},
		Auth:           repositories.AuthRepository{DB: pool},
		Registration:   repositories.RegistrationRepository{DB: pool},
		Dashboard:      repositories.DashboardRepository{DB: pool},
		Users:          repositories.UserRepository{DB: pool},
		Files:          storage.NewLocalStore(env.UploadDir, env.UploadMaxBytes),
		Tokens:         auth.NewTokenManager(env.JWTSecret, env.JWTExpiresIn),
		Ping:           intconfig.EnsureDB,
		Environment:    env.AppEnv,
		QueryTimeout:   env.QueryTimeout,
		ExportPageSize: int64(env.ExportPageSize),
		ExposeErrors:   env.IsDevelopment(),
	}

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           router.NewRouter(env, api),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info("server listening", zap.String("addr", env.AppAddr), zap.String("env", env.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil {
			zap.L().Error("server failed", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	zap.L().Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("server shutdown failed", zap.Error(err))
		return err
	}

	zap.L().Info("server stopped")
	return nil
}
