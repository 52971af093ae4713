package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/ozodbek/blogapi/internal/api/http/handler"
	"github.com/ozodbek/blogapi/internal/api/http/router"
	"github.com/ozodbek/blogapi/internal/config"
	"github.com/ozodbek/blogapi/internal/logger"
	"github.com/ozodbek/blogapi/internal/mailer"
	"github.com/ozodbek/blogapi/internal/model"
	"github.com/ozodbek/blogapi/internal/repository/postgres"
	"github.com/ozodbek/blogapi/internal/server"
	"github.com/ozodbek/blogapi/internal/service"
	storage "github.com/ozodbek/blogapi/internal/storage/minio"
	"github.com/ozodbek/blogapi/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	codeRepo := postgres.NewVerificationCodeRepository(db)
	formSessionRepo := postgres.NewFormSessionRepository(db)
	postRepo := postgres.NewPostRepository(db)
	likeRepo := postgres.NewLikeRepository(db)
	commentRepo := postgres.NewCommentRepository(db)
	newsletterRepo := postgres.NewNewsletterRepository(db)
	contactRepo := postgres.NewContactRepository(db)

	smtpMailer := mailer.New(cfg.SMTP)
	formToken := token.NewFormToken(cfg.Session.CookieSecret)

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket, cfg.Storage.PublicURL)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	verificationService := service.NewVerification(codeRepo, smtpMailer, logger)
	authService := service.NewAuth(userRepo, sessionRepo, formSessionRepo, verificationService, logger)
	captchaService := service.NewCaptcha(formSessionRepo, logger)
	contentService := service.NewContent(postRepo, likeRepo, commentRepo, logger)
	newsletterService := service.NewNewsletter(newsletterRepo, logger)
	contactService := service.NewContact(contactRepo, logger)
	mediaService := service.NewMedia(storageClient, userRepo, logger)

	h := handler.New(
		authService,
		captchaService,
		contentService,
		newsletterService,
		contactService,
		mediaService,
		formToken,
		logger,
	)
	httpServer := server.NewHTTPServer(
		router.New(h, logger, cfg.HTTP.AllowedOrigin),
		fmt.Sprintf(":%s", cfg.HTTP.Port),
	)

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
