package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/mcgege/openstudio/internal/config"
	"github.com/mcgege/openstudio/internal/dispatch"
	"github.com/mcgege/openstudio/internal/events"
	"github.com/mcgege/openstudio/internal/handler"
	"github.com/mcgege/openstudio/internal/middleware"
	"github.com/mcgege/openstudio/internal/notification"
	"github.com/mcgege/openstudio/internal/repository"
	"github.com/mcgege/openstudio/internal/router"
	"github.com/mcgege/openstudio/internal/scheduler"
	"github.com/mcgege/openstudio/internal/service"
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	loc        *time.Location
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
	dispatcher *dispatch.Dispatcher
	publisher  *events.NATSPublisher
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"CheckinDesk",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if app.loc, err = cfg.Checkin.Location(); err != nil {
		return nil, fmt.Errorf("checkin timezone: %w", err)
	}

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	attendanceRepo := repository.NewAttendanceRepo(a.db)
	classPassRepo := repository.NewClassPassRepo(a.db)
	customerRepo := repository.NewCustomerRepo(a.db, a.loc)

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.loc, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	a.publisher, err = events.NewNATSPublisher(a.cfg.NATS.URL, a.log)
	if err != nil {
		return fmt.Errorf("init event publisher: %w", err)
	}

	a.dispatcher = dispatch.New(
		attendanceRepo,
		classPassRepo,
		customerRepo,
		n,
		a.publisher,
		a.cfg.Checkin.RequestTimeout,
		a.log,
	)

	loc := a.loc
	checkinService := service.NewCheckinService(
		attendanceRepo,
		customerRepo,
		a.dispatcher,
		a.log,
		func() time.Time { return time.Now().In(loc) },
	)

	a.scheduler = scheduler.New(
		checkinService,
		a.cfg.Scheduler.Interval,
		a.cfg.Checkin.IdleTTL,
		a.log,
	)

	h := handler.NewHandler(checkinService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	// ответы транспорта пишут в базу, ждём их до закрытия соединений
	done := make(chan struct{})
	go func() {
		a.dispatcher.Wait()
		close(done)
	}()
	select {
	case <-done:
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "in-flight requests finished")
	case <-shutdownCtx.Done():
		a.log.LogAttrs(context.Background(), logger.WarnLevel, "in-flight requests abandoned on shutdown")
	}

	if err := a.publisher.Close(); err != nil {
		return fmt.Errorf("close event publisher: %w", err)
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
