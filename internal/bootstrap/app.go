package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"cvbuilder-backend/internal/account"
	googleauth "cvbuilder-backend/internal/auth"
	"cvbuilder-backend/internal/cvs"
	"cvbuilder-backend/internal/plans"
	"cvbuilder-backend/internal/queue"
	"cvbuilder-backend/internal/review"
	"cvbuilder-backend/internal/review/sequence"
	"cvbuilder-backend/internal/shared/config"
	"cvbuilder-backend/internal/shared/server"
	"cvbuilder-backend/internal/shared/storage/db"
	"cvbuilder-backend/internal/shared/storage/object"
	localstore "cvbuilder-backend/internal/shared/storage/object/local"
	s3store "cvbuilder-backend/internal/shared/storage/object/s3"
	"cvbuilder-backend/internal/users"
)

// App holds shared dependencies and the wired router.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.Store
	Queue  queue.Client

	CVRepo     cvs.Repo
	ReviewRepo review.Repo
	PlansRepo  plans.Repo
	UsersRepo  users.Repo

	CVService     *cvs.Service
	ReviewService *review.Service
	PlansService  *plans.Service
	UsersService  *users.Service

	CVHandler      *cvs.Handler
	ReviewHandler  *review.Handler
	PlansHandler   *plans.Handler
	UsersHandler   *users.Handler
	AccountHandler *account.Handler
	GoogleAuth     *googleauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	queueClient, err := buildQueue(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		Queue:  queueClient,
	}

	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         app.Config,
		CVHandler:      app.CVHandler,
		ReviewHandler:  app.ReviewHandler,
		PlansHandler:   app.PlansHandler,
		UsersHandler:   app.UsersHandler,
		AccountHandler: app.AccountHandler,
		GoogleAuth:     app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.Store, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildQueue(ctx context.Context, cfg config.Config) (queue.Client, error) {
	if cfg.QueueBackend != "sqs" || strings.TrimSpace(cfg.SQSQueueURL) == "" {
		return nil, nil
	}
	return queue.NewSQSClient(ctx)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) {
	if app.DB != nil {
		app.CVRepo = &cvs.PGRepo{DB: app.DB}
		app.ReviewRepo = &review.PGRepo{DB: app.DB}
		app.PlansRepo = &plans.PGRepo{DB: app.DB}
		app.UsersRepo = &users.PGRepo{DB: app.DB}
	} else {
		app.CVRepo = cvs.NewMemoryRepo()
		app.ReviewRepo = review.NewMemoryRepo()
		app.PlansRepo = plans.NewMemoryRepo()
		app.UsersRepo = users.NewMemoryRepo()
	}

	app.CVService = &cvs.Service{Store: app.Store, Repo: app.CVRepo}

	var completer review.Completer
	if app.Queue != nil {
		completer = queue.NewReviewCompleter(app.Queue)
	}
	app.ReviewService = &review.Service{
		Repo:      app.ReviewRepo,
		CVs:       app.CVRepo,
		Sequence:  sequence.Build,
		Completer: completer,
	}

	app.PlansService = plans.NewService(app.PlansRepo)
	app.UsersService = users.NewService(app.UsersRepo, app.CVRepo)

	app.CVHandler = cvs.NewHandler(app.CVService)
	app.ReviewHandler = review.NewHandler(app.ReviewService)
	app.PlansHandler = plans.NewHandler(app.PlansService)
	app.UsersHandler = users.NewHandler(app.UsersService)
	app.AccountHandler = account.NewHandler(account.NewService(app.CVRepo, app.ReviewRepo))
	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		app.UsersService,
	)
}
