package main

import (
	"context"
	"errors"
	"log"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketplace/internal/auth"
	"marketplace/internal/controllers/http"
	mmysql "marketplace/internal/infra/mysql"
	"marketplace/internal/infra/rabbitmq"
	mysqlrepo "marketplace/internal/repository/mysql"
	redisrepo "marketplace/internal/repository/redis"
	"marketplace/internal/services"
	"marketplace/pkg/ctxmanage"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	db, err := mmysql.NewMySQLFromEnv()
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(200)
	sqlDB.SetMaxIdleConns(50)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	redisClient := redis.NewClient(&redis.Options{
		Addr:         os.Getenv("REDIS_HOST") + ":6379",
		DB:           0,
		PoolSize:     100,
		MinIdleConns: 10,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})

	publisher, err := rabbitmq.NewPublisher(os.Getenv("RABBITMQ_URL"), "order.exchange")
	if err != nil {
		log.Fatalf("failed to init publisher: %v", err)
	}
	defer publisher.Close()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	txm := mysqlrepo.NewTxManager(db)
	listingRepo := mysqlrepo.NewListingRepository(db)
	orderRepo := mysqlrepo.NewOrderRepository(db)
	cartStore := redisrepo.NewCartStore(redisClient)

	orderService := services.NewOrderService(txm, listingRepo, orderRepo, cartStore, publisher)
	cartService := services.NewCartService(cartStore, listingRepo)

	handler := http.NewHandler(orderService, cartService, redisClient)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ctxmanage.TraceMiddleware())

	authed := r.Group("/", auth.Middleware([]byte(jwtSecret)))
	handler.RegisterRoutes(authed)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &nethttp.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("starting marketplace checkout service on port %s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
