package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"remindr/internal/config"
	"remindr/internal/core"
	"remindr/internal/http/handler"
	"remindr/internal/http/handler/middleware"
	"remindr/internal/http/payload"
	"remindr/internal/http/server"
	"remindr/internal/storage"
	"remindr/pkg/log"
	"remindr/pkg/passhash"
	"remindr/pkg/token"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("remindr", zapcore.InfoLevel)

	// optional .env for local development
	if err := godotenv.Load(); err == nil {
		logger.Infow("environment loaded from .env file")
	}

	config := config.NewAppConfig()

	// stores
	users := storage.NewUserStore()
	reminders := storage.NewReminderStore()

	// seed the single provisioned account
	hasher := passhash.NewHasher()
	passwordHash, err := hasher.Hash(config.SeedPassword)
	if err != nil {
		logger.Errorw("failed to hash seed password", "error", err)
		return err
	}

	err = users.Seed(context.Background(), []storage.User{
		{
			Username:     config.SeedUsername,
			Name:         config.SeedName,
			PasswordHash: passwordHash,
		},
	})
	if err != nil {
		logger.Errorw("failed to seed user store", "error", err)
		return err
	}

	// remindr
	remindr := core.NewRemindr(
		logger,
		users,
		reminders,
		token.NewIssuer(),
		hasher)

	// handler
	remHlr := handler.NewReminderHandler(
		logger,
		payload.DecodeValidator{},
		remindr)

	// middleware
	auth := middleware.NewAuthMiddleware(logger, remindr)

	// register routes
	mux := http.NewServeMux()
	mux.HandleFunc(handler.Login, remHlr.HandleLogin)
	mux.Handle(handler.ListReminders, auth.Require(http.HandlerFunc(remHlr.HandleListReminders)))
	mux.Handle(handler.CreateReminder, auth.Require(http.HandlerFunc(remHlr.HandleCreateReminder)))
	mux.Handle(handler.UpdateReminder, auth.Require(http.HandlerFunc(remHlr.HandleUpdateReminder)))
	mux.Handle(handler.DeleteReminder, auth.Require(http.HandlerFunc(remHlr.HandleDeleteReminder)))

	// front-end assets
	mux.Handle("GET /", http.FileServer(http.Dir(config.StaticDir)))

	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
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
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
