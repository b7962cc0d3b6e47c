package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"usermgmt/internal/config"
	"usermgmt/internal/core"
	"usermgmt/internal/db"
	"usermgmt/internal/http/handler"
	"usermgmt/internal/http/handler/middleware"
	"usermgmt/internal/http/payload"
	"usermgmt/internal/http/server"
	"usermgmt/internal/repository"
	"usermgmt/pkg/log"

	"go.uber.org/zap"
)

const dbConnectTimeout = 15 * time.Second

func Start() error {
	config, err := config.NewAppConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := log.NewZapLogger("usermgmt", log.ParseLevel(config.LogLevel))
	defer logger.Sync()

	dbConn, err := db.Open(config.DBDriver, config.DBConnectionString, logger)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}
	defer dbConn.Close()

	// the server must not accept traffic before the database answers
	ctx, cancel := context.WithTimeout(context.Background(), dbConnectTimeout)
	err = dbConn.Ping(ctx)
	cancel()
	if err != nil {
		logger.Errorw("database is not reachable", "error", err, "driver", config.DBDriver)
		return err
	}
	logger.Infow("database connection established", "driver", config.DBDriver)

	hdlr, err := NewApp(logger, dbConn)
	if err != nil {
		return err
	}

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

// NewApp migrates the schema on store and returns the fully wired HTTP
// handler: router, user and analytics endpoints, and middleware.
func NewApp(logger *zap.SugaredLogger, store *db.GormDB) (http.Handler, error) {
	// repository
	repo := repository.NewUserRepository(store)
	if err := repo.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return nil, err
	}

	// user manager
	users := core.NewUserManager(logger, repo)

	// handlers
	mux := handler.NewRouter(logger,
		handler.NewUserHandler(logger, payload.Decoder{}, users),
		handler.NewAnalyticsHandler(logger, users),
		handler.NewHealthHandler(logger),
	)

	// middleware
	hdlr := middleware.NewRecoveryMiddleware(logger).Recover(mux)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	return hdlr, nil
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	if sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return nil
}
