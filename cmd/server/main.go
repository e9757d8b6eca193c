package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"arbos/internal/config"
	"arbos/internal/decompiler"
	"arbos/internal/email/noop"
	"arbos/internal/email/ses"
	"arbos/internal/export"
	"arbos/internal/handler"
	"arbos/internal/port"
	"arbos/internal/registry"
	"arbos/internal/repository/postgres"
	"arbos/internal/router"
	"arbos/internal/service"
	s3storage "arbos/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	projectRepo := postgres.NewProjectRepo(db)
	treeRepo := postgres.NewTreeRepo(db)
	noteRepo := postgres.NewNoteRepo(db)
	taskRepo := postgres.NewTaskRepo(db)
	reportRepo := postgres.NewReportRepo(db)
	attachmentRepo := postgres.NewAttachmentRepo(db)
	settingRepo := postgres.NewSettingRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Email sender
	var emailSender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName, cfg.Email.FrontendURL)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		emailSender = noop.NewNoopSender(cfg.Email.FrontendURL)
	}

	// Decompiler and report-type registry
	dec := decompiler.New(decompiler.Config{
		AllCapsMinLen:     cfg.Decompiler.AllCapsMinLen,
		ParagraphMinLen:   cfg.Decompiler.ParagraphMinLen,
		MetadataScanLines: cfg.Decompiler.MetadataScanLines,
		ContextWindow:     cfg.Decompiler.ContextWindow,
		MaxKeywords:       cfg.Decompiler.MaxKeywords,
	})
	types := registry.NewWithBuiltins()

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	userSvc := service.NewUserService(userRepo)
	projectSvc := service.NewProjectService(projectRepo)
	treeSvc := service.NewTreeService(treeRepo, projectRepo)
	noteSvc := service.NewNoteService(noteRepo, projectRepo, treeRepo)
	taskSvc := service.NewTaskService(taskRepo, projectRepo)
	reportSvc := service.NewReportService(reportRepo, projectRepo, dec, types)
	attachmentSvc := service.NewAttachmentService(attachmentRepo, projectRepo, treeRepo, s3Client, &cfg.S3)
	settingsSvc := service.NewSettingsService(settingRepo)
	passwordResetSvc := service.NewPasswordResetService(userRepo, emailSender, cfg.JWT)
	exportSvc := service.NewExportService(projectRepo, treeRepo, reportRepo, export.NewPDFStub())

	// Initialize handlers
	h := router.Handlers{
		Auth:       handler.NewAuthHandler(authSvc, passwordResetSvc),
		User:       handler.NewUserHandler(userSvc),
		Project:    handler.NewProjectHandler(projectSvc),
		Tree:       handler.NewTreeHandler(treeSvc),
		Note:       handler.NewNoteHandler(noteSvc),
		Task:       handler.NewTaskHandler(taskSvc),
		Report:     handler.NewReportHandler(reportSvc, types),
		Decompile:  handler.NewDecompileHandler(reportSvc),
		Attachment: handler.NewAttachmentHandler(attachmentSvc),
		Settings:   handler.NewSettingsHandler(settingsSvc),
		Export:     handler.NewExportHandler(exportSvc),
		Health:     handler.NewHealthHandler(db),
	}

	r := router.Setup(authSvc, cfg.CORS.AllowedOrigins, h)

	// Background decompile queue worker
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	worker := service.NewDecompileQueueWorker(reportRepo, dec, service.DecompileQueueConfig{
		PollInterval: time.Duration(cfg.Queue.PollIntervalSecs) * time.Second,
		Concurrency:  cfg.Queue.Concurrency,
	})
	go worker.Start(ctx)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
