package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/phoenix-pos/stock-display/config"
	"github.com/phoenix-pos/stock-display/internal/adapter/httphandler"
	"github.com/phoenix-pos/stock-display/internal/adapter/kafka"
	"github.com/phoenix-pos/stock-display/internal/adapter/stockapi"
	"github.com/phoenix-pos/stock-display/internal/adapter/storage"
	"github.com/phoenix-pos/stock-display/internal/core/port"
	"github.com/phoenix-pos/stock-display/internal/core/service"
	"github.com/phoenix-pos/stock-display/internal/widget"
	"github.com/phoenix-pos/stock-display/pkg/retry"
	"github.com/phoenix-pos/stock-display/pkg/schema"
	"github.com/twmb/franz-go/pkg/sr"
)

const lookupRoute = "/products/v1/get-stocks-on-product-code"

type coreService struct {
	stockLookuper      port.StockLookuper
	apiSettingsManager port.APISettingsManager
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	sqldb      storage.SQLDB
	events     port.LookupEventsProducer
	service    coreService
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initStorage()
	app.initLookupEventsProducer()
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initStorage() {
	const op = "App.initStorage"

	sqldb, err := retry.DoWithResult(
		app.ctx,
		retry.RetryConfig{MaxAttempts: 3},
		func() (storage.SQLDB, error) {
			return storage.NewSQLDB(app.ctx, app.cfg.SQLDB)
		},
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.sqldb = sqldb
}

// initLookupEventsProducer wires the audit stream. Auditing is optional:
// without broker config the producer stays nil and the service skips it.
func (app *App) initLookupEventsProducer() {
	const op = "App.initLookupEventsProducer"

	if !app.cfg.AuditEnabled() {
		slog.Info("lookup auditing is disabled", "op", op)
		return
	}

	ctx := app.ctx
	broker := app.cfg.Broker

	srClient, err := sr.NewClient(sr.URLs(broker.SchemaRegistryURLs...))
	if err != nil {
		app.fallDown(op, err)
	}

	schemaCreater := schema.NewSchemaCreater(srClient)

	subject := broker.Topics.StockLookups + "-value"
	serde, err := schema.NewSerdeLookupEventV1(
		ctx,
		schema.SubjectOpt(subject),
		schema.SchemaIdentifierOpt(schemaCreater),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	producer, err := kafka.NewLookupEventsProducer(
		kafka.ProducerClientOpt(ctx, broker.SeedBrokers, broker.Topics.StockLookups),
		kafka.ProducerEncoderOpt(serde),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.events = producer
}

func (app *App) initCoreService() {
	settings := storage.NewSettingsRepository(app.sqldb)
	fetcher := stockapi.New()

	s := service.New(settings, fetcher, app.events)
	app.service.stockLookuper = s
	app.service.apiSettingsManager = s
}

func (app *App) initInboundAdapters() {
	const op = "App.initInboundAdapters"

	renderer, err := widget.NewRenderer(lookupRoute)
	if err != nil {
		app.fallDown(op, err)
	}

	mux := http.NewServeMux()
	httphandler.RegisterStocks(mux, app.service.stockLookuper)
	httphandler.RegisterWidget(mux, renderer)
	httphandler.RegisterAdmin(
		mux,
		app.service.apiSettingsManager,
		app.cfg.Admin.Login,
		app.cfg.Admin.Password,
	)

	handler := httphandler.AllowJSONOrForm(mux)
	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	if app.events != nil {
		app.events.Close()
	}
	app.sqldb.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
