package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/Fridaxdnt/EcoFinance-Pro/internal/config"
	"github.com/Fridaxdnt/EcoFinance-Pro/internal/regulation"
	"github.com/Fridaxdnt/EcoFinance-Pro/internal/repository/memory"
	"github.com/Fridaxdnt/EcoFinance-Pro/internal/repository/mongodb"
	"github.com/Fridaxdnt/EcoFinance-Pro/internal/repository/sheets"
	"github.com/Fridaxdnt/EcoFinance-Pro/internal/scheduler"
	"github.com/Fridaxdnt/EcoFinance-Pro/internal/server/handlers"
	"github.com/Fridaxdnt/EcoFinance-Pro/internal/server/router"
	"github.com/Fridaxdnt/EcoFinance-Pro/internal/service/compliance"
	"github.com/Fridaxdnt/EcoFinance-Pro/internal/service/query"
	recordsvc "github.com/Fridaxdnt/EcoFinance-Pro/internal/service/records"
	reportingsvc "github.com/Fridaxdnt/EcoFinance-Pro/internal/service/reporting"
	"github.com/Fridaxdnt/EcoFinance-Pro/internal/service/simulation"
	whatsappsvc "github.com/Fridaxdnt/EcoFinance-Pro/internal/service/whatsapp"
	whatsappclient "github.com/Fridaxdnt/EcoFinance-Pro/pkg/clients/whatsapp"
	"github.com/Fridaxdnt/EcoFinance-Pro/pkg/logger"
)

type recordTable interface {
	recordsvc.Repository
	Close(ctx context.Context) error
}

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.NewWithFile(cfg.Log.File))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	regs, err := regulation.Load(cfg.RegulationFile)
	if err != nil {
		baseLogger.Fatal("failed to load regulation dataset", zap.Error(err))
	}

	var mongoRepo *mongodb.MongoDBRepository
	if cfg.Store.Backend == config.BackendMongoDB || cfg.Reporting.Archive {
		mongoRepo, err = mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
		if err != nil {
			baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
		}
		// The record store closes the client when it is backed by MongoDB.
		if cfg.Store.Backend != config.BackendMongoDB {
			defer func() {
				if err := mongoRepo.Close(context.Background()); err != nil {
					baseLogger.Error("failed to close mongodb connection", zap.Error(err))
				}
			}()
		}
	}

	table, err := openRecordTable(cfg, mongoRepo, baseLogger)
	if err != nil {
		baseLogger.Fatal("failed to init record store", zap.Error(err))
	}
	defer func() {
		if err := table.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close record store", zap.Error(err))
		}
	}()

	recordService := recordsvc.NewService(table, cfg.Regime, baseLogger.Named("svc.records"))
	evaluator := compliance.NewEvaluator(regs.Table())
	advisor := query.NewRouter(evaluator, regs.References, cfg.Regime.PeriodDays, baseLogger.Named("svc.query"))

	var archive reportingsvc.Archive
	if cfg.Reporting.Archive {
		archive = mongoRepo
	}
	generator := reportingsvc.NewGenerator(evaluator, cfg.Regime.PeriodDays)
	reportingSvc := reportingsvc.NewService(recordService, generator, archive, cfg.Regime.BaselineEnergyMean, baseLogger.Named("svc.reporting"))

	simulator := simulation.NewSimulator(cfg.Regime.SavingsRate, cfg.Regime.ReductionBand)

	analyticsHandler := handlers.NewAnalyticsHandler(recordService, advisor, reportingSvc, simulator, evaluator, regs.References, baseLogger.Named("handlers.analytics"))

	var (
		webhookHandler *handlers.WebhookHandler
		reportSender   scheduler.ReportSender
	)
	if cfg.WhatsApp.Enabled() {
		whatsClient := whatsappclient.NewClient(cfg.WhatsApp)
		messagingSvc := whatsappsvc.NewMetaWhatsAppService(cfg.WhatsApp, whatsClient, recordService, advisor, baseLogger.Named("svc.whatsapp"))
		webhookHandler = handlers.NewWebhookHandler(messagingSvc, baseLogger.Named("handlers.whatsapp"))
		reportSender = messagingSvc
		baseLogger.Info("whatsapp advisor channel enabled")
	} else {
		baseLogger.Warn("whatsapp credentials missing, advisor channel disabled")
	}

	engine := router.New(analyticsHandler, webhookHandler, baseLogger.Named("router"))

	sched, err := scheduler.NewScheduler(cfg.Reporting, cfg.WhatsApp.ReportRecipient, reportingSvc, reportSender, baseLogger.Named("scheduler"))
	if err != nil {
		baseLogger.Fatal("failed to init scheduler", zap.Error(err))
	}
	if err := sched.Start(); err != nil {
		baseLogger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting",
			zap.String("port", cfg.Server.Port),
			zap.String("store", cfg.Store.Backend),
			zap.Int("thresholds", len(regs.Thresholds)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func openRecordTable(cfg *config.Config, mongoRepo *mongodb.MongoDBRepository, log *zap.Logger) (recordTable, error) {
	switch cfg.Store.Backend {
	case config.BackendMemory:
		return memory.NewStore(), nil
	case config.BackendMongoDB:
		return mongoRepo, nil
	case config.BackendSheets:
		repo, err := sheets.NewGoogleSheetRepository(context.Background(), cfg.Sheets, log.Named("repo.sheets"))
		if err != nil {
			return nil, err
		}
		return sheets.NewRecordTable(repo, cfg.Sheets.Range, log.Named("repo.records")), nil
	default:
		return nil, fmt.Errorf("unsupported store backend %q", cfg.Store.Backend)
	}
}
