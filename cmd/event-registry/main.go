package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventRegistry/internal/config"
	"eventRegistry/internal/http-server/handlers/attendee/deleteAttendee"
	"eventRegistry/internal/http-server/handlers/attendee/listAttendees"
	"eventRegistry/internal/http-server/handlers/attendee/registerAttendee"
	"eventRegistry/internal/http-server/handlers/attendee/updateAttendee"
	"eventRegistry/internal/http-server/handlers/auth/login"
	"eventRegistry/internal/http-server/handlers/auth/logout"
	"eventRegistry/internal/http-server/handlers/auth/me"
	"eventRegistry/internal/http-server/handlers/auth/registerUser"
	"eventRegistry/internal/http-server/handlers/auth/verifyOtp"
	"eventRegistry/internal/http-server/handlers/event/createEvent"
	"eventRegistry/internal/http-server/handlers/event/deleteEvent"
	"eventRegistry/internal/http-server/handlers/event/listEvents"
	"eventRegistry/internal/http-server/handlers/event/updateEvent"
	mwauth "eventRegistry/internal/http-server/middleware/auth"
	"eventRegistry/internal/http-server/middleware/mwlogger"
	"eventRegistry/internal/lib/logger/handlers/slogpretty"
	"eventRegistry/internal/lib/logger/sl"
	"eventRegistry/internal/notifier"
	"eventRegistry/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("starting event registry", slog.String("env", cfg.Env))
	log.Debug("debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	otpSender := notifier.NewLogSender(log)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Post("/register", registerUser.New(log, storage, otpSender, cfg.Auth.OTPTTL))
	router.Post("/verify-otp", verifyOtp.New(log, storage))
	router.Post("/login", login.New(log, storage, cfg.Auth.SessionTTL))

	router.Group(func(r chi.Router) {
		r.Use(mwauth.New(log, storage))

		r.Post("/logout", logout.New(log, storage))
		r.Get("/me", me.New(log))
	})

	router.Post("/events", createEvent.New(log, storage))
	router.Get("/events", listEvents.New(log, storage))
	router.Put("/events/{id}", updateEvent.New(log, storage))
	router.Delete("/events/{id}", deleteEvent.New(log, storage))

	router.Post("/events/{event_id}/register", registerAttendee.New(log, storage))
	router.Get("/events/{event_id}/attendees", listAttendees.New(log, storage))
	router.Put("/events/{event_id}/attendees/{attendee_id}", updateAttendee.New(log, storage))
	router.Delete("/events/{event_id}/attendees/{attendee_id}", deleteAttendee.New(log, storage))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				deleted, err := storage.DeleteExpiredSessions()
				if err != nil {
					log.Error("failed to delete expired sessions", sl.Err(err))
				} else if deleted > 0 {
					log.Info("expired sessions deleted", slog.Int64("count", deleted))
				}
			case <-stop:
				return
			}
		}
	}()

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
