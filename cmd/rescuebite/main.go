package main

import (
	"context"
	"fmt"
	"time"

	"github.com/govalues/decimal"
	"github.com/rescuebite/rescuebite/internal/adapter/auth"
	"github.com/rescuebite/rescuebite/internal/adapter/config"
	"github.com/rescuebite/rescuebite/internal/adapter/handler/http"
	"github.com/rescuebite/rescuebite/internal/adapter/logger"
	"github.com/rescuebite/rescuebite/internal/adapter/notifier"
	"github.com/rescuebite/rescuebite/internal/adapter/storage"
	"github.com/rescuebite/rescuebite/internal/adapter/storage/repository"
	"github.com/rescuebite/rescuebite/internal/core/service"
	"go.uber.org/zap"
)

const dispatcherWorkers = 3
const settlementInterval = time.Hour

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("repository creating error", zap.Error(err))
		return
	}

	tokenService, err := auth.New()
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	settlementDay, err := conf.Settlement.Weekday()
	if err != nil {
		log.Error("settlement config error", zap.Error(err))
		return
	}
	defaultRate, err := decimal.Parse(conf.Settlement.DefaultRate)
	if err != nil {
		log.Error("commission rate config error", zap.Error(err))
		return
	}

	svc, err := service.NewService(repo, settlementDay, defaultRate, log.Named("Service"))
	if err != nil {
		log.Error("service creating error", zap.Error(err))
		return
	}

	publisher, err := notifier.NewRabbitMQPublisher(conf.Broker, log.Named("Publisher"))
	if err != nil {
		log.Error("notification publisher creating error", zap.Error(err))
		return
	}
	defer publisher.Close()

	dispatcher := notifier.NewDispatcher(repo, publisher, log.Named("Dispatcher"))
	dispatcher.Run(ctx, dispatcherWorkers)

	go svc.RunSettlementLoop(ctx, settlementInterval)

	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	packageHandler, err := http.NewPackageHandler(svc, log.Named("Package handler"))
	if err != nil {
		log.Error("package handler creating error", zap.Error(err))
		return
	}
	balanceHandler, err := http.NewBalanceHandler(svc, log.Named("Balance handler"))
	if err != nil {
		log.Error("balance handler creating error", zap.Error(err))
		return
	}
	settlementHandler, err := http.NewSettlementHandler(svc, log.Named("Settlement handler"))
	if err != nil {
		log.Error("settlement handler creating error", zap.Error(err))
		return
	}
	paymentHandler, err := http.NewPaymentHandler(svc, log.Named("Payment handler"))
	if err != nil {
		log.Error("payment handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, tokenService,
		orderHandler, packageHandler, balanceHandler, settlementHandler, paymentHandler,
		log.Named("Router"))
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
