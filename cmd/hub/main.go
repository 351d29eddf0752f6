// Package main - точка входа приложения SkillConnect Hub.
//
// SkillConnect объединяет обучение и карьеру: пользователи записываются
// на курсы, отмечают прогресс по учебному плану, публикуют вакансии и
// общаются с карьерным ассистентом.
//
// Архитектура следует принципам Clean Architecture и DDD:
// - Domain: чистая бизнес-логика без внешних зависимостей
// - Application: оркестрация use cases (Commands/Queries/Event Handlers)
// - Infrastructure: реализация репозиториев, внешние API, планировщик
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	// Application layer
	"github.com/skillconnect/skillconnect-hub/internal/application/command"
	"github.com/skillconnect/skillconnect-hub/internal/application/eventhandler"
	"github.com/skillconnect/skillconnect-hub/internal/application/query"

	// Infrastructure layer
	"github.com/skillconnect/skillconnect-hub/internal/infrastructure/external/gemini"
	"github.com/skillconnect/skillconnect-hub/internal/infrastructure/messaging"
	"github.com/skillconnect/skillconnect-hub/internal/infrastructure/persistence/postgres"
	"github.com/skillconnect/skillconnect-hub/internal/infrastructure/persistence/redis"
	"github.com/skillconnect/skillconnect-hub/internal/infrastructure/scheduler"
	"github.com/skillconnect/skillconnect-hub/internal/infrastructure/scheduler/jobs"
	"github.com/skillconnect/skillconnect-hub/internal/infrastructure/seed"

	// Domain layer
	"github.com/skillconnect/skillconnect-hub/internal/domain/job"
	"github.com/skillconnect/skillconnect-hub/internal/domain/shared"
	"github.com/skillconnect/skillconnect-hub/internal/domain/user"

	// Packages
	"github.com/skillconnect/skillconnect-hub/config"
	"github.com/skillconnect/skillconnect-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// MAIN
// ══════════════════════════════════════════════════════════════════════════════

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

// Application собирает слой приложения: все командные и запросные
// обработчики, через которые внешние интерфейсы работают с доменом.
type Application struct {
	// Accounts
	Register *command.RegisterHandler
	Login    *command.LoginHandler
	Logout   *command.LogoutHandler

	// Learning
	EnrollCourse *command.EnrollCourseHandler
	ToggleLesson *command.ToggleLessonHandler

	// Profile & jobs
	UpdateProfile *command.UpdateProfileHandler
	PostJob       *command.PostJobHandler

	// Assistant
	AskAssistant *command.AskAssistantHandler

	// Queries
	Dashboard    *query.GetDashboardHandler
	CourseStatus *query.GetCourseStatusHandler
	ListJobs     *query.ListJobsHandler
}

func run(ctx context.Context) error {
	// ─────────────────────────────────────────────────────────────────────────
	// 1. ЗАГРУЗКА КОНФИГУРАЦИИ
	// ─────────────────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 2. НАСТРОЙКА ЛОГИРОВАНИЯ
	// ─────────────────────────────────────────────────────────────────────────
	// Application-слой использует pkg/logger; messaging, eventhandler и
	// scheduler пишут через slog.
	appLog := logger.New(logger.Options{
		Output: os.Stdout,
		Level:  logger.ParseLevel(cfg.Observability.LogLevel),
	})
	slogLog := setupSlog(cfg)

	appLog.Info("starting SkillConnect Hub",
		logger.String("env", string(cfg.App.Environment)),
		logger.String("version", cfg.App.Version),
		logger.String("storage", string(cfg.Storage.Backend)),
	)

	// ─────────────────────────────────────────────────────────────────────────
	// 3. ПОДКЛЮЧЕНИЕ ХРАНИЛИЩА
	// ─────────────────────────────────────────────────────────────────────────
	var (
		users    user.Repository
		sessions user.SessionStore
		board    job.Board
		pinger   jobs.Pinger
		closers  []func()
	)

	// Клиент Redis нужен и как хранилище, и для распределённой шины событий.
	var redisStore *redis.Store

	switch cfg.Storage.Backend {
	case config.StoragePostgres:
		appLog.Info("connecting to PostgreSQL...")
		conn, err := postgres.NewConnectionFromURL(ctx, cfg.Database.URL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		closers = append(closers, func() {
			appLog.Info("closing database connection...")
			conn.Close()
		})

		if err := conn.Ping(ctx); err != nil {
			return fmt.Errorf("database ping failed: %w", err)
		}

		appLog.Info("running database migrations...")
		if err := postgres.NewMigrator(conn).Migrate(ctx); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		users = postgres.NewAccountRepo(conn)
		sessions = postgres.NewSessionRepo(conn)
		board = postgres.NewJobRepo(conn)
		pinger = conn

	case config.StorageRedis:
		appLog.Info("connecting to Redis...")
		redisCfg := redis.DefaultConfig()
		redisCfg.Host = cfg.Redis.Host
		redisCfg.Port = cfg.Redis.Port
		redisCfg.Password = cfg.Redis.Password
		redisCfg.DB = cfg.Redis.DB
		redisCfg.PoolSize = cfg.Redis.PoolSize
		redisCfg.MinIdleConns = cfg.Redis.MinIdleConns
		redisCfg.DialTimeout = cfg.Redis.DialTimeout
		redisCfg.ReadTimeout = cfg.Redis.ReadTimeout
		redisCfg.WriteTimeout = cfg.Redis.WriteTimeout

		redisStore, err = redis.NewStore(redisCfg)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		closers = append(closers, func() {
			appLog.Info("closing redis connection...")
			_ = redisStore.Close()
		})

		users = redis.NewAccountStore(redisStore)
		sessions = redis.NewSessionStore(redisStore)
		board = redis.NewJobBoard(redisStore)
		pinger = redisStore

	default:
		return fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
	appLog.Info("storage ready", logger.String("backend", string(cfg.Storage.Backend)))

	// ─────────────────────────────────────────────────────────────────────────
	// 4. КАТАЛОГ КУРСОВ И НАЧАЛЬНЫЕ ДАННЫЕ
	// ─────────────────────────────────────────────────────────────────────────
	catalog, err := seed.Catalog()
	if err != nil {
		return fmt.Errorf("failed to build course catalog: %w", err)
	}
	appLog.Info("course catalog loaded", logger.Int("courses", catalog.Len()))

	if cfg.App.SeedOnStart {
		if err := seed.NewSeeder(users, board, appLog).Run(ctx); err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 5. EVENT BUS И DISPATCHER
	// ─────────────────────────────────────────────────────────────────────────
	appLog.Info("initializing event bus...")

	var eventBus shared.EventBus
	busConfig := messaging.DefaultInMemoryEventBusConfig()
	busConfig.Logger = slogLog

	if redisStore != nil {
		// На Redis-бекенде события расходятся между инстансами через Pub/Sub.
		redisBus, err := messaging.NewRedisEventBus(messaging.RedisEventBusConfig{
			Client:         messaging.NewGoRedisClient(redisStore.Client()),
			LocalBusConfig: busConfig,
			Logger:         slogLog,
		})
		if err != nil {
			return fmt.Errorf("failed to create redis event bus: %w", err)
		}
		eventBus = redisBus
		closers = append(closers, func() {
			appLog.Info("closing event bus...")
			_ = redisBus.Close()
		})
	} else {
		memBus := messaging.NewInMemoryEventBus(busConfig)
		eventBus = memBus
		closers = append(closers, func() {
			appLog.Info("closing event bus...")
			_ = memBus.Close()
		})
	}

	dispatcherConfig := messaging.DefaultDispatcherConfig(eventBus)
	dispatcherConfig.Logger = slogLog
	dispatcher := messaging.NewDispatcher(dispatcherConfig)
	dispatcher.Use(messaging.RecoveryMiddleware(slogLog))
	dispatcher.Use(messaging.LoggingMiddleware(slogLog))
	dispatcher.Use(messaging.MetricsMiddleware(dispatcher.Metrics()))

	// ─────────────────────────────────────────────────────────────────────────
	// 6. РЕГИСТРАЦИЯ EVENT HANDLERS
	// ─────────────────────────────────────────────────────────────────────────
	appLog.Info("registering event handlers...")

	courseCompleted := eventhandler.NewOnCourseCompletedHandler(
		users, catalog, slogLog, eventhandler.DefaultCourseCompletedConfig())
	userRegistered := eventhandler.NewOnUserRegisteredHandler(
		users, catalog, slogLog, eventhandler.DefaultUserRegisteredConfig())
	jobPosted := eventhandler.NewOnJobPostedHandler(
		board, users, slogLog, eventhandler.DefaultJobPostedConfig())

	if err := dispatcher.Register(shared.EventCourseCompleted, "on_course_completed", courseCompleted.Handle); err != nil {
		return fmt.Errorf("failed to register event handler: %w", err)
	}
	if err := dispatcher.Register(shared.EventUserRegistered, "on_user_registered", userRegistered.Handle); err != nil {
		return fmt.Errorf("failed to register event handler: %w", err)
	}
	if err := dispatcher.Register(shared.EventJobPosted, "on_job_posted", jobPosted.Handle); err != nil {
		return fmt.Errorf("failed to register event handler: %w", err)
	}

	if err := dispatcher.Start(); err != nil {
		return fmt.Errorf("failed to start dispatcher: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 7. КАРЬЕРНЫЙ АССИСТЕНТ
	// ─────────────────────────────────────────────────────────────────────────
	var assistant command.Assistant
	if cfg.Gemini.APIKey != "" {
		geminiCfg := gemini.DefaultConfig()
		geminiCfg.APIKey = cfg.Gemini.APIKey
		geminiCfg.Model = cfg.Gemini.Model
		geminiCfg.RequestTimeout = cfg.Gemini.RequestTimeout
		geminiCfg.Temperature = cfg.Gemini.Temperature
		geminiCfg.TopP = cfg.Gemini.TopP

		assistant, err = gemini.New(ctx, geminiCfg, appLog)
		if err != nil {
			return fmt.Errorf("failed to create assistant: %w", err)
		}
		appLog.Info("assistant ready", logger.String("model", cfg.Gemini.Model))
	} else {
		// Без ключа чат остаётся доступным: каждый запрос получает
		// дружелюбный fallback-ответ.
		assistant = unavailableAssistant{}
		appLog.Warn("GEMINI_API_KEY is not set, assistant runs in degraded mode")
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 8. APPLICATION LAYER
	// ─────────────────────────────────────────────────────────────────────────
	app := &Application{
		Register:      command.NewRegisterHandler(users, sessions, eventBus, appLog),
		Login:         command.NewLoginHandler(users, sessions, appLog),
		Logout:        command.NewLogoutHandler(sessions, appLog),
		EnrollCourse:  command.NewEnrollCourseHandler(users, sessions, catalog, eventBus, appLog),
		ToggleLesson:  command.NewToggleLessonHandler(users, sessions, catalog, eventBus, appLog),
		UpdateProfile: command.NewUpdateProfileHandler(users, sessions, eventBus, appLog),
		PostJob:       command.NewPostJobHandler(board, users, sessions, eventBus, appLog),
		AskAssistant:  command.NewAskAssistantHandler(assistant, users, sessions, appLog),
		Dashboard:     query.NewGetDashboardHandler(users, sessions, catalog),
		CourseStatus:  query.NewGetCourseStatusHandler(users, sessions, catalog),
		ListJobs:      query.NewListJobsHandler(board),
	}
	_ = app // обработчики отдаются внешнему интерфейсу, когда он подключён
	appLog.Info("application layer ready")

	// ─────────────────────────────────────────────────────────────────────────
	// 9. ПЛАНИРОВЩИК ФОНОВЫХ ЗАДАЧ
	// ─────────────────────────────────────────────────────────────────────────
	schedCfg := scheduler.DefaultConfig()
	schedCfg.Logger = slogLog
	sched := scheduler.New(schedCfg)

	reportJob := jobs.NewEngagementReportJob(
		users, catalog, board, slogLog, jobs.DefaultEngagementReportConfig())
	if err := sched.Register(reportJob, scheduler.NewIntervalSchedule(time.Hour)); err != nil {
		return fmt.Errorf("failed to register job: %w", err)
	}

	healthJob := jobs.NewStorageHealthJob(
		pinger, slogLog, jobs.DefaultStorageHealthConfig(string(cfg.Storage.Backend)))
	if err := sched.Register(healthJob, scheduler.NewIntervalSchedule(30*time.Second)); err != nil {
		return fmt.Errorf("failed to register job: %w", err)
	}

	if err := sched.Start(ctx); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 10. GRACEFUL SHUTDOWN
	// ─────────────────────────────────────────────────────────────────────────
	appLog.Info("SkillConnect Hub is running")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	sig := <-sigCh
	appLog.Info("received shutdown signal", logger.String("signal", sig.String()))

	appLog.Info("starting graceful shutdown...",
		logger.Duration("timeout", cfg.App.ShutdownTimeout),
	)

	if err := sched.Stop(); err != nil {
		appLog.Error("failed to stop scheduler gracefully", logger.Err(err))
	}
	if err := dispatcher.Stop(); err != nil {
		appLog.Error("failed to stop dispatcher gracefully", logger.Err(err))
	}

	// Event bus и хранилище закрываются в обратном порядке
	for i := len(closers) - 1; i >= 0; i-- {
		closers[i]()
	}

	appLog.Info("shutdown completed")

	return nil
}

// ══════════════════════════════════════════════════════════════════════════════
// HELPERS
// ══════════════════════════════════════════════════════════════════════════════

// setupSlog настраивает slog для инфраструктурных компонентов.
func setupSlog(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}
	if cfg.App.Debug {
		opts.Level = slog.LevelDebug
	}

	var handler slog.Handler
	if cfg.Observability.LogFormat == "json" || cfg.IsProduction() {
		// JSON формат для production (лучше для агрегаторов логов)
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		// Текстовый формат для development (лучше читается)
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	log := slog.New(handler)
	slog.SetDefault(log)

	return log
}

// ══════════════════════════════════════════════════════════════════════════════
// ADAPTERS
// ══════════════════════════════════════════════════════════════════════════════

// unavailableAssistant подменяет ассистента, когда API-ключ не задан.
// Обработчик AskAssistant превращает ошибку в fallback-ответ.
type unavailableAssistant struct{}

func (unavailableAssistant) Reply(
	_ context.Context,
	_ command.AssistantProfile,
	_ []command.ChatTurn,
	_ string,
) (string, error) {
	return "", shared.ErrAssistantUnavailable
}
