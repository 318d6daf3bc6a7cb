package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hrms-api/internal/auth"
	"github.com/hrms-api/internal/config"
	"github.com/hrms-api/internal/handler"
	"github.com/hrms-api/internal/mailer"
	"github.com/hrms-api/internal/repository"
	"github.com/hrms-api/internal/service"
	"github.com/hrms-api/internal/storage"
	"github.com/hrms-api/migrations"
	"github.com/pressly/goose/v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	// Инициализация логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("application stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Подключение к БД
	db, err := connectDB(cfg.Database)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	defer sqlDB.Close()

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	// Запуск миграций
	if err := runMigrations(sqlDB); err != nil {
		return err
	}

	tokens, err := auth.NewTokenManager(cfg.Auth.JWTSecret)
	if err != nil {
		return err
	}

	var mail mailer.Mailer = mailer.NewNopMailer(logger)
	if cfg.SMTP.Enabled() {
		smtpMailer, err := mailer.NewSMTPMailer(mailer.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
		if err != nil {
			return err
		}
		mail = smtpMailer
	}

	// без бакета ссылки на файлы документов отвечают 503
	var files storage.FileStorage
	if cfg.Storage.Enabled() {
		s3Storage, err := storage.NewS3Storage(context.Background(), storage.Config{
			Bucket:          cfg.Storage.Bucket,
			Region:          cfg.Storage.Region,
			Endpoint:        cfg.Storage.Endpoint,
			AccessKeyID:     cfg.Storage.AccessKeyID,
			SecretAccessKey: cfg.Storage.SecretAccessKey,
		})
		if err != nil {
			return err
		}
		files = s3Storage
	}

	// Инициализация репозиториев
	tenantRepo := repository.NewTenantRepository(db)
	userRepo := repository.NewUserRepository(db)
	empRepo := repository.NewEmployeeRepository(db)

	// Инициализация сервисов
	authService := service.NewAuthService(userRepo, tenantRepo, empRepo, tokens)
	tenantService := service.NewTenantService(tenantRepo)
	empService := service.NewEmployeeService(empRepo, tenantRepo, mail, logger)
	goalService := service.NewGoalService(repository.NewGoalRepository(db), empRepo)
	reviewService := service.NewReviewService(repository.NewReviewRepository(db), empRepo)
	leaveService := service.NewLeaveRequestService(repository.NewLeaveRequestRepository(db), empRepo)
	timesheetService := service.NewTimesheetService(repository.NewTimesheetRepository(db), empRepo)
	announcementService := service.NewAnnouncementService(repository.NewAnnouncementRepository(db))
	recognitionService := service.NewRecognitionService(repository.NewRecognitionRepository(db), empRepo)
	onboardingService := service.NewOnboardingTaskService(repository.NewOnboardingTaskRepository(db), empRepo)
	documentService := service.NewDocumentService(repository.NewDocumentRepository(db), empRepo, files)

	// Инициализация хендлеров
	handlers := handler.Handlers{
		Auth:           handler.NewAuthHandler(authService, logger),
		Tenant:         handler.NewTenantHandler(tenantService, logger),
		Employee:       handler.NewEmployeeHandler(empService, logger),
		Goal:           handler.NewGoalHandler(goalService, logger),
		Review:         handler.NewReviewHandler(reviewService, logger),
		LeaveRequest:   handler.NewLeaveRequestHandler(leaveService, logger),
		Timesheet:      handler.NewTimesheetHandler(timesheetService, logger),
		Announcement:   handler.NewAnnouncementHandler(announcementService, logger),
		Recognition:    handler.NewRecognitionHandler(recognitionService, logger),
		OnboardingTask: handler.NewOnboardingTaskHandler(onboardingService, logger),
		Document:       handler.NewDocumentHandler(documentService, logger),
	}

	// Настройка роутера
	router := handler.NewRouter(handlers, tokens, cfg.CORS.AllowedOrigins, logger)

	// Настройка HTTP сервера
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router.Setup(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan struct{})
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("could not gracefully shutdown the server", slog.Any("error", err))
		}
		close(done)
	}()

	logger.Info("server is starting",
		slog.String("port", cfg.Server.Port),
		slog.String("env", cfg.Env),
		slog.Bool("smtp", cfg.SMTP.Enabled()),
		slog.Bool("storage", cfg.Storage.Enabled()),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not listen on port %s: %w", cfg.Server.Port, err)
	}

	<-done
	logger.Info("server stopped")
	return nil
}

const connectAttempts = 30

func connectDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	return connectWithRetry(func() (*gorm.DB, error) {
		return gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
			Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
			TranslateError: true,
		})
	}, connectAttempts, time.Second)
}

// connectWithRetry повторяет подключение, в ошибке остаётся причина последней попытки
func connectWithRetry(open func() (*gorm.DB, error), attempts int, delay time.Duration) (*gorm.DB, error) {
	var err error

	for i := 0; i < attempts; i++ {
		var db *gorm.DB
		if db, err = open(); err == nil {
			if err = ping(db); err == nil {
				return db, nil
			}
		}
		time.Sleep(delay)
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
}

func ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return err
	}
	return nil
}

func runMigrations(db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
