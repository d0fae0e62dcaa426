package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nikmy/timekeeper/internal/api"
	"github.com/nikmy/timekeeper/internal/auth"
	"github.com/nikmy/timekeeper/internal/availability"
	"github.com/nikmy/timekeeper/internal/repo"
	"github.com/nikmy/timekeeper/internal/telegram"
	"github.com/nikmy/timekeeper/pkg/errors"
	"github.com/nikmy/timekeeper/pkg/logger"
	"github.com/nikmy/timekeeper/pkg/txn"
)

func main() {
	f, err := parseFlags(os.Args[1:])
	if err != nil {
		stdlog.Fatal(err)
	}

	cfg, err := loadConfig(f)
	if err != nil {
		stdlog.Fatal(errors.WrapFail(err, "load config"))
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		stdlog.Fatal(err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client, err := repo.NewMongoClient(ctx, cfg.Mongo)
	if err != nil {
		log.Panic(errors.WrapFail(err, "init mongo client"))
	}

	consistency := txn.CausalConsistency
	if cfg.Mongo.SnapshotReads {
		consistency = txn.SnapshotConsistency
	}

	engine := availability.New(
		log,
		availability.NewCapacity(cfg.Availability),
		repo.NewSnapshotReader(client, consistency),
	)

	authorizer := auth.NewTokenAuthorizer(cfg.Auth)

	server := api.NewServer(cfg.API, log, authorizer, engine, client)

	var bot *telegram.Bot
	if cfg.Telegram.Token != "" {
		bot, err = telegram.New(log, cfg.Telegram, engine, authorizer)
		if err != nil {
			log.Panic(errors.WrapFail(err, "init telegram bot"))
		}

		err = bot.Run(ctx)
		if err != nil {
			log.Panic(errors.WrapFail(err, "run telegram bot"))
		}
		log.Infof("telegram bot has been started")
	}

	log.Infof("serving http on %s (%s)", cfg.API.HTTP.Addr, cfg.Environment)

	err = server.Serve(ctx)
	if err != nil && ctx.Err() == nil {
		log.Error(errors.WrapFail(err, "serve http"))
	}

	log.Infof("graceful shutdown...")

	if bot != nil {
		bot.Stop()
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelShutdown()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error(errors.WrapFail(err, "shutdown"))
	}

	log.Infof("shutdown complete")
}
