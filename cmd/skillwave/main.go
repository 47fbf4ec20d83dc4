package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/skillwave/skillwave-api/internal/auth"
	"github.com/skillwave/skillwave-api/internal/config"
	"github.com/skillwave/skillwave-api/internal/handler"
	"github.com/skillwave/skillwave-api/internal/notifier"
	"github.com/skillwave/skillwave-api/internal/repository"
	"github.com/skillwave/skillwave-api/internal/server"
	"github.com/skillwave/skillwave-api/internal/upload"
	"github.com/skillwave/skillwave-api/internal/usecase"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	_ = godotenv.Load()
	cfg := config.New(&logger)

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error().Err(err).Msg("failed to disconnect from mongodb")
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logger.Fatal().Err(err).Msg("failed to ping mongodb")
	}
	db := client.Database(cfg.MongoDB)

	userRepo := repository.NewUserMongoRepository(ctx, &logger, db)
	companyRepo := repository.NewCompanyMongoRepository(ctx, &logger, db)
	jobRepo := repository.NewJobMongoRepository(db)
	appRepo := repository.NewApplicationMongoRepository(ctx, &logger, db)

	tokenAuth := auth.NewTokenAuthenticator(cfg.Token.Secret, cfg.Token.Issuer, cfg.Token.TTL)

	notify, err := notifier.New(cfg.Notifier, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure notifier")
	}

	saver, err := upload.NewSaver(cfg.UploadDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to prepare upload directory")
	}

	accountUC := usecase.NewAccountUsecase(userRepo, companyRepo, tokenAuth, &logger)
	jobUC := usecase.NewJobUsecase(jobRepo, companyRepo, appRepo, &logger)
	applicationUC := usecase.NewApplicationUsecase(appRepo, jobRepo, userRepo, companyRepo, notify, &logger)
	companyUC := usecase.NewCompanyUsecase(companyRepo, &logger)

	srv := server.New(server.Handlers{
		User:        handler.NewUserHandler(accountUC, saver, cfg.Token.TTL, &logger),
		Job:         handler.NewJobHandler(jobUC, &logger),
		Application: handler.NewApplicationHandler(applicationUC, &logger),
		Company:     handler.NewCompanyHandler(companyUC, &logger),
		Upload:      handler.NewUploadHandler(saver, &logger),
	}, tokenAuth, cfg.CORSOrigin, &logger)

	addr := ":" + cfg.HTTPPort
	logger.Info().Str("addr", addr).Msg("server starting")
	if err := srv.Listen(addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
