package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/stripe/stripe-go/v82"

	"food-heaven-server/internal/auth"
	"food-heaven-server/internal/events"
	httpx "food-heaven-server/internal/http"
	"food-heaven-server/internal/http/handlers"
	"food-heaven-server/internal/notify"
	"food-heaven-server/internal/repo"
	"food-heaven-server/internal/service"
	"food-heaven-server/internal/store"
	"food-heaven-server/pkg/config"
	"food-heaven-server/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.New("food-heaven", cfg.Common.LogLevel)

	ctxDB, cancelDB := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelDB()

	db, err := store.Connect(ctxDB, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = db.Close(ctx)
	}()

	stripe.Key = cfg.Stripe.SecretKey

	users := &repo.Users{Col: db.Users()}
	menu := &repo.Menu{Col: db.Menu()}
	reviews := &repo.Reviews{Col: db.Reviews()}
	carts := &repo.Carts{Col: db.Carts()}
	payments := &repo.Payments{Col: db.Payments()}
	reports := &repo.Reports{Users: db.Users(), Menu: db.Menu(), Payments: db.Payments()}

	guard := &auth.Guard{
		Tokens: auth.NewTokenService(cfg.Auth.AccessTokenSecret),
		Roles:  users,
		Log:    log,
	}

	var notifiers []service.Notifier
	if cfg.MailEnabled() {
		notifiers = append(notifiers, notify.NewMailer(cfg.Mailgun.Domain, cfg.Mailgun.APIKey, cfg.Mailgun.Sender))
	} else {
		log.Warn().Msg("mailgun not configured, confirmation emails disabled")
	}
	if cfg.EventsEnabled() {
		pub, err := events.Connect(cfg.Rabbit.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("rabbit connect failed")
		}
		defer func() { _ = pub.Close() }()
		notifiers = append(notifiers, pub)
	}

	paymentsSvc := &service.Payments{
		Intents:   service.StripeIntents{},
		Repo:      payments,
		Carts:     carts,
		Notifiers: notifiers,
		Log:       log,
	}
	reporting := &service.Reporting{Store: reports}

	router := httpx.NewRouter(&httpx.Handlers{
		Token:    &handlers.TokenHandler{Tokens: guard.Tokens, Log: log},
		Users:    &handlers.UsersHandler{Repo: users, Guard: guard, Log: log},
		Menu:     &handlers.MenuHandler{Repo: menu, Log: log},
		Reviews:  &handlers.ReviewsHandler{Repo: reviews, Log: log},
		Carts:    &handlers.CartsHandler{Repo: carts, Guard: guard, Log: log},
		Payments: &handlers.PaymentsHandler{Service: paymentsSvc, Repo: payments, Guard: guard, Log: log},
		Stats:    &handlers.StatsHandler{Reporting: reporting, Log: log},
	}, guard)

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("http started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http failed")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info().Msg("shutdown...")
	shCtx, shCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shCancel()
	_ = srv.Shutdown(shCtx)
}
