package app

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"newsagent/internal/adapter/enhancer"
	"newsagent/internal/adapter/fetcher"
	"newsagent/internal/adapter/parser"
	"newsagent/internal/config"
	"newsagent/internal/domain"
	"newsagent/internal/logger"
	"newsagent/internal/migrations"
	"newsagent/internal/notify"
	"newsagent/internal/render"
	server "newsagent/internal/transport/http"
	"newsagent/internal/usecase"
	"newsagent/internal/worker"
	"newsagent/storage"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Options задает параметры запуска, приходящие из командной строки.
type Options struct {
	HTMLPath  string
	JSONPath  string
	SendEmail bool
	ServeAddr string
	Interval  time.Duration
}

// App представляет основное приложение агента новостей.
// Координирует конвейер: сборку дайджеста, рендеринг, слияние хранилища,
// архивирование и рассылку, а также необязательные режимы serve и watch.
type App struct {
	config        *config.Config
	opts          Options
	logger        *slog.Logger
	digestBuilder *usecase.DigestBuildUseCase
	annotator     *usecase.DrawbackAnnotator
	merger        *usecase.MergeUseCase
	htmlRenderer  *render.HTMLRenderer
	mailer        *notify.Mailer
	archive       storage.Archiver
	dbPool        *pgxpool.Pool
	server        *http.Server
	worker        *worker.Worker
	stopChan      chan os.Signal
	wg            sync.WaitGroup
}

// New создает и инициализирует новый экземпляр приложения.
// Выполняет настройку логгера, внешнего текстового сервиса, хранилищ
// и всех компонентов конвейера. Ошибки конфигурации почты и serve-режима
// поднимаются здесь, до любых сетевых обращений.
func New(cfg *config.Config, opts Options) (*App, error) {
	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	slog.SetDefault(appLogger)

	a := &App{
		config:       cfg,
		opts:         opts,
		logger:       appLogger,
		htmlRenderer: render.NewHTMLRenderer(),
		stopChan:     make(chan os.Signal, 1),
	}

	var textEnhancer usecase.TextEnhancer
	if enhancerCfg := config.EnhancerFromEnv(); enhancerCfg.APIKey != "" {
		textEnhancer = enhancer.NewOpenAIEnhancer(enhancerCfg, appLogger)
		appLogger.Info("Text enhancer enabled",
			slog.String("component", "app"),
			slog.String("model", enhancerCfg.Model),
		)
	}

	httpFetcher := fetcher.NewHTTPFetcher(appLogger)
	feedParser := parser.NewFeedParser(appLogger)
	summarizer := usecase.NewSummarizer(textEnhancer, appLogger)
	a.annotator = usecase.NewDrawbackAnnotator(textEnhancer, appLogger)
	a.digestBuilder = usecase.NewDigestBuildUseCase(httpFetcher, feedParser, summarizer, appLogger)

	var recordStore *storage.JSONFileStore
	if opts.JSONPath != "" {
		recordStore = storage.NewJSONFileStore(opts.JSONPath, appLogger)
	}
	a.merger = usecase.NewMergeUseCase(recordStore, a.annotator, appLogger)

	if opts.SendEmail {
		mailCfg, err := config.MailFromEnv()
		if err != nil {
			return nil, fmt.Errorf("mail configuration error: %w", err)
		}
		a.mailer = notify.NewMailer(mailCfg, appLogger)
	}

	if dsn := config.DatabaseURL(); dsn != "" {
		dbPool, err := pgxpool.New(context.Background(), dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := dbPool.Ping(context.Background()); err != nil {
			dbPool.Close()
			return nil, fmt.Errorf("database ping failed: %w", err)
		}
		if err := migrations.Apply(context.Background(), appLogger, dbPool); err != nil {
			dbPool.Close()
			return nil, fmt.Errorf("migrations failed: %w", err)
		}
		a.dbPool = dbPool
		a.archive = storage.NewPostgresArchive(dbPool, appLogger)
	}

	if opts.ServeAddr != "" {
		if recordStore == nil {
			return nil, fmt.Errorf("serve mode requires a JSON store path")
		}
		recordsGetter := usecase.NewRecordsGetterUseCase(recordStore)
		handler := server.NewHandler(appLogger, recordsGetter)
		router := server.NewServer(appLogger, handler, opts.HTMLPath)
		a.server = &http.Server{
			Addr:    opts.ServeAddr,
			Handler: router,
		}
	}

	if opts.Interval > 0 {
		a.worker = worker.New(a, opts.Interval, appLogger)
	}
	return a, nil
}

// RunOnce выполняет один полный прогон конвейера: сборку дайджеста,
// запись HTML-отчета, слияние хранилища, архивирование и рассылку.
// Сбои отдельных лент уже пропущены на этапе сборки дайджеста.
func (a *App) RunOnce(ctx context.Context) error {
	digest := a.digestBuilder.BuildDigest(ctx, a.config.Feeds)

	if err := a.htmlRenderer.WriteReport(digest, a.opts.HTMLPath); err != nil {
		return fmt.Errorf("failed to write HTML report: %w", err)
	}
	a.logger.Info("HTML report written",
		slog.String("component", "app"),
		slog.String("path", a.opts.HTMLPath),
	)

	var records []domain.Record
	if a.opts.JSONPath != "" {
		merged, err := a.merger.Merge(ctx, digest)
		if err != nil {
			return fmt.Errorf("failed to merge record store: %w", err)
		}
		records = merged
	} else if a.archive != nil {
		records = a.merger.BuildRecords(ctx, digest)
	}

	if a.archive != nil {
		archived, err := a.archive.ArchiveRecords(ctx, records)
		if err != nil {
			return fmt.Errorf("failed to archive records: %w", err)
		}
		a.logger.Info("Records archived",
			slog.String("component", "app"),
			slog.Int("count", archived),
		)
	}

	if a.mailer != nil {
		textRenderer := render.NewTextRenderer(func(article domain.Article) string {
			return a.annotator.Annotate(ctx, article.Title, article.Summary, article.Source)
		})
		if err := a.mailer.Send(notify.DefaultSubject, textRenderer.Render(digest)); err != nil {
			return err
		}
	}
	return nil
}

// Run выполняет первый прогон конвейера и, если запрошены режимы
// watch или serve, остается работать до сигнала завершения.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("Starting news agent",
		slog.String("component", "app"),
		slog.Int("feed_count", len(a.config.Feeds)),
	)
	if err := a.RunOnce(ctx); err != nil {
		a.shutdownResources()
		return err
	}
	if a.worker == nil && a.server == nil {
		a.shutdownResources()
		a.logger.Info("Run completed", slog.String("component", "app"))
		return nil
	}

	if a.worker != nil {
		a.worker.Start()
	}
	if a.server != nil {
		listener, err := net.Listen("tcp", a.server.Addr)
		if err != nil {
			a.Shutdown()
			return fmt.Errorf("failed to create listener: %w", err)
		}
		a.logger.Info("HTTP server ready",
			slog.String("component", "server"),
			slog.String("address", listener.Addr().String()),
		)
		a.wg.Add(1)
		go func() {
			defer a.wg.Done()
			if err := a.server.Serve(listener); err != nil && err != http.ErrServerClosed {
				a.logger.Error("HTTP server failed", slog.Any("error", err))
			}
		}()
	}

	signal.Notify(a.stopChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-a.stopChan
	a.logger.Info("Shutdown signal received",
		slog.String("component", "app"),
		slog.String("signal", sig.String()),
	)
	return a.Shutdown()
}

// Shutdown выполняет graceful shutdown приложения.
// Останавливает воркер, завершает HTTP-сервер, закрывает соединение
// с архивной базой и ожидает завершения всех горутин.
func (a *App) Shutdown() error {
	a.logger.Info("Starting graceful shutdown")
	if a.worker != nil {
		a.worker.Stop()
	}
	if a.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("HTTP server shutdown failed", slog.Any("error", err))
		}
	}
	a.shutdownResources()
	a.wg.Wait()
	a.logger.Info("Application stopped gracefully")
	return nil
}

func (a *App) shutdownResources() {
	if a.archive != nil {
		a.archive.Close()
		a.archive = nil
		a.dbPool = nil
	}
}
