package main

import (
	"database/sql"
	"log"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"

	"chambaBack/internal/config"
	"chambaBack/internal/handlers"
	"chambaBack/internal/repositories"
	"chambaBack/internal/services"
	"chambaBack/utils"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	db       *sql.DB
	tokens   *utils.Manager
	limiter  *services.RateLimiter

	userRepo        *repositories.UserRepository
	requestRepo     *repositories.RequestRepository
	favoriteRepo    *repositories.FavoriteRepository
	applicationRepo *repositories.ApplicationRepository
	agreementRepo   *repositories.AgreementRepository

	matchHandler       *handlers.MatchHandler
	requestHandler     *handlers.RequestHandler
	favoriteHandler    *handlers.FavoriteHandler
	applicationHandler *handlers.ApplicationHandler
	agreementHandler   *handlers.AgreementHandler
}

func initializeApp(db *sql.DB, rdb *redis.Client, cfg config.Config, errorLog, infoLog *log.Logger) *application {
	// Repositories
	userRepo := repositories.UserRepository{DB: db}
	requestRepo := repositories.RequestRepository{DB: db}
	favoriteRepo := repositories.FavoriteRepository{DB: db}
	applicationRepo := repositories.ApplicationRepository{DB: db}
	agreementRepo := repositories.AgreementRepository{DB: db}

	// Services
	matchService := &services.MatchService{
		UserRepo:        &userRepo,
		RequestRepo:     &requestRepo,
		ApplicationRepo: &applicationRepo,
		AgreementRepo:   &agreementRepo,
		Scorer:          services.NewScorer(),
	}
	requestService := &services.RequestService{RequestRepo: &requestRepo}
	favoriteService := &services.FavoriteService{FavoriteRepo: &favoriteRepo, RequestRepo: &requestRepo}
	applicationService := &services.ApplicationService{ApplicationRepo: &applicationRepo, RequestRepo: &requestRepo}
	agreementService := &services.AgreementService{
		AgreementRepo:   &agreementRepo,
		ApplicationRepo: &applicationRepo,
		RequestRepo:     &requestRepo,
	}

	// Handlers
	matchHandler := &handlers.MatchHandler{Service: matchService}
	requestHandler := &handlers.RequestHandler{Service: requestService}
	favoriteHandler := &handlers.FavoriteHandler{Service: favoriteService}
	applicationHandler := &handlers.ApplicationHandler{Service: applicationService}
	agreementHandler := &handlers.AgreementHandler{Service: agreementService}

	tokens, err := utils.NewManager(cfg.Auth.SigningKey)
	if err != nil {
		errorLog.Fatal(err)
	}

	// The in-process counter is enough for a single instance; with Redis
	// configured the buckets are shared across instances.
	var counter services.HitCounter = services.NewMemoryHitCounter(time.Minute)
	if rdb != nil {
		counter = &services.RedisHitCounter{RDB: rdb, Window: time.Minute}
	}
	limiter := &services.RateLimiter{Counter: counter, Max: cfg.RateLimit.MaxPerMinute}

	return &application{
		errorLog:           errorLog,
		infoLog:            infoLog,
		db:                 db,
		tokens:             tokens,
		limiter:            limiter,
		userRepo:           &userRepo,
		requestRepo:        &requestRepo,
		favoriteRepo:       &favoriteRepo,
		applicationRepo:    &applicationRepo,
		agreementRepo:      &agreementRepo,
		matchHandler:       matchHandler,
		requestHandler:     requestHandler,
		favoriteHandler:    favoriteHandler,
		applicationHandler: applicationHandler,
		agreementHandler:   agreementHandler,
	}
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		return nil, err
	}
	db.SetMaxIdleConns(35)
	log.Println("Successfully connected to database")
	return db, nil
}

func addSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cross-Origin-Opener-Policy", "same-origin")
		w.Header().Set("Cross-Origin-Embedder-Policy", "require-corp")
		w.Header().Set("Cross-Origin-Resource-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
