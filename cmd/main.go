package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	"chambaBack/internal/config"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
	cfg := config.LoadConfig()

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Server.Address
	} else {
		port = ":" + port
	}

	addr := flag.String("addr", port, "HTTP network address")
	flag.Parse()

	infoLog := log.New(os.Stdout, "INFO\t", log.Ldate|log.Ltime)
	errorLog := log.New(os.Stderr, "ERROR\t", log.Ldate|log.Ltime|log.Lshortfile)

	db, err := openDB(cfg.Database.URL)
	if err != nil {
		errorLog.Fatal(err)
	}
	defer db.Close()

	rdb := openRedis(cfg.Redis.URL, infoLog, errorLog)
	if rdb != nil {
		defer rdb.Close()
	}

	app := initializeApp(db, rdb, cfg, errorLog, infoLog)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cleaner := newRequestCleaner(app.requestRepo, cfg.Cleaner.Schedule, cfg.Cleaner.GraceDays, infoLog, errorLog)
	if err := cleaner.start(ctx); err != nil {
		errorLog.Fatal(err)
	}
	defer cleaner.stop()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowCredentials: true,
		AllowedHeaders:   []string{"Content-Type", "Authorization", "Refresh-Token"},
	})

	srv := &http.Server{
		Addr:         *addr,
		ErrorLog:     errorLog,
		Handler:      addSecurityHeaders(c.Handler(app.routes())),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	infoLog.Printf("Starting server on %s", *addr)
	err = srv.ListenAndServe()
	errorLog.Fatal(err)
}

// openRedis connects to Redis when a URL is configured. Without Redis
// the rate limiter falls back to its in-process counter.
func openRedis(url string, infoLog, errorLog *log.Logger) *redis.Client {
	if url == "" {
		return nil
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		errorLog.Printf("Failed to parse Redis URL: %v", err)
		return nil
	}
	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		errorLog.Printf("Failed to ping Redis, rate limiting will use the in-process counter: %v", err)
		client.Close()
		return nil
	}
	infoLog.Println("Successfully connected to Redis")
	return client
}
