package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appclearing "github.com/jhoicas/Compensa-api/internal/application/clearing"
	"github.com/jhoicas/Compensa-api/internal/domain/cycle"
	"github.com/jhoicas/Compensa-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Compensa-api/internal/interfaces/http"
	"github.com/jhoicas/Compensa-api/pkg/config"
	"github.com/jhoicas/Compensa-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Time("cycle_anchor", cfg.Clearing.Anchor).
		Int("cycle_days", cfg.Clearing.CycleDays).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	invoiceRepo := postgres.NewInvoiceRepository(pool)
	stateStore := postgres.NewStateStore(pool)

	// Fuente del instante: el servidor, salvo que el prototipo congele el reloj.
	var now cycle.Clock = cycle.SystemClock{}
	if !cfg.Clearing.FixedNow.IsZero() {
		now = cycle.FixedClock{Instant: cfg.Clearing.FixedNow}
		log.Warn().Time("fixed_now", cfg.Clearing.FixedNow).Msg("reloj congelado (modo prototipo)")
	}
	clock := cycle.New(cfg.Clearing.Anchor, cfg.Clearing.CycleDays, cfg.Clearing.ConsentDays)

	states := appclearing.NewContainer(stateStore, log)
	ledgerUC := appclearing.NewLedgerUseCase(invoiceRepo)
	overviewUC := appclearing.NewOverviewUseCase(invoiceRepo, states, clock, now)
	inclusionUC := appclearing.NewInclusionUseCase(invoiceRepo, states, clock, now)
	submissionUC := appclearing.NewSubmissionUseCase(invoiceRepo, states, clock, now)
	visitUC := appclearing.NewVisitUseCase(invoiceRepo, states, clock, now)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Ledger:     ledgerUC,
		Overview:   overviewUC,
		Inclusion:  inclusionUC,
		Submission: submissionUC,
		Visits:     visitUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	// Drenar los guardados fire-and-forget antes de soltar el pool.
	states.Wait()

	log.Info().Msg("aplicación detenida")
}
