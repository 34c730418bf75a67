package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"chillgamer/pkg/logger"
	"chillgamer/reviews-service/internal/app/reviews/config"
	"chillgamer/reviews-service/internal/app/reviews/handler"
	"chillgamer/reviews-service/internal/app/reviews/infrastructure"
	"chillgamer/reviews-service/internal/app/reviews/infrastructure/cache"
	"chillgamer/reviews-service/internal/app/reviews/infrastructure/messaging"
	"chillgamer/reviews-service/internal/app/reviews/processor"
	"chillgamer/reviews-service/internal/app/reviews/repository"
	"chillgamer/reviews-service/internal/app/reviews/service"
)

const serviceName = "reviews-service"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(serviceName, cfg.Log.Level)

	if cfg.Log.LogstashAddr != "" {
		if err := logger.InitLogstash(cfg.Log.LogstashAddr, serviceName, cfg.Log.Level); err != nil {
			logger.Warn().Err(err).Msg("Failed to connect to Logstash, using stdout only")
		} else {
			logger.Info().Str("logstash_addr", cfg.Log.LogstashAddr).Msg("Connected to Logstash")
		}
	}

	mongoClient, err := connectMongoDB(cfg.MongoDB)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(ctx); err != nil {
			logger.Error().Err(err).Msg("Error disconnecting from MongoDB")
		}
	}()
	logger.Info().
		Str("database", cfg.MongoDB.Database).
		Msg("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB.Database)
	ensureIndexes(db, cfg)

	// Redis и Kafka необязательны: интерфейсы остаются nil, если выключены
	var topReviewsCache infrastructure.TopReviewsCache
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(cfg.Redis.Address(), cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TopReviewsTTL)
		if err != nil {
			logger.Warn().Err(err).Str("address", cfg.Redis.Address()).Msg("Redis unavailable, top reviews cache disabled")
		} else {
			topReviewsCache = redisCache
			defer redisCache.Close()
			logger.Info().Str("address", cfg.Redis.Address()).Msg("Connected to Redis")
		}
	}

	var kafkaProducer infrastructure.MessagePublisher
	if cfg.Kafka.Enabled {
		producer := messaging.NewKafkaProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		kafkaProducer = producer
		defer producer.Close()
		logger.Info().
			Str("topic", cfg.Kafka.Topic).
			Strs("brokers", cfg.Kafka.Brokers).
			Msg("Initialized Kafka producer")
	}

	reviewRepo := repository.NewReviewRepository(db, cfg.MongoDB.ReviewsCollection)
	wishlistRepo := repository.NewDocumentRepository(db, cfg.MongoDB.WishlistCollection)
	userRepo := repository.NewDocumentRepository(db, cfg.MongoDB.UsersCollection)

	reviewService := service.NewReviewService(reviewRepo, topReviewsCache, kafkaProducer)
	wishlistService := service.NewWishlistService(wishlistRepo, cfg.Wishlist.OwnerField, cfg.MongoDB.WishlistCollection)
	userService := service.NewUserService(userRepo, cfg.MongoDB.UsersCollection)

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	if topReviewsCache != nil {
		warmer := processor.NewCacheWarmer(reviewService)
		if err := warmer.Start(workerCtx, cfg.Redis.RefreshSchedule); err != nil {
			logger.Fatal().Err(err).Str("schedule", cfg.Redis.RefreshSchedule).Msg("Failed to start cache warmer")
		}
		defer warmer.Stop()
	}

	router := handler.SetupRoutes(
		handler.NewReviewHandler(reviewService),
		handler.NewWishlistHandler(wishlistService),
		handler.NewUserHandler(userService),
	)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("Starting Chill-Gamer Reviews Service")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down Reviews Service...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Reviews Service stopped gracefully")
}

func connectMongoDB(cfg config.MongoDBConfig) (*mongo.Client, error) {
	clientOptions := options.Client().ApplyURI(cfg.URI)

	var client *mongo.Client
	var err error

	for i := 0; i < 10; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		client, err = mongo.Connect(ctx, clientOptions)
		cancel()

		if err == nil {
			pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
			err = client.Ping(pingCtx, nil)
			pingCancel()
			if err == nil {
				return client, nil
			}
			_ = client.Disconnect(context.Background())
		}

		logger.Warn().
			Int("attempt", i+1).
			Err(err).
			Msg("Failed to connect to MongoDB, retrying...")
		time.Sleep(3 * time.Second)
	}

	return nil, err
}

// ensureIndexes создает индексы под фильтры и сортировки; ошибка не мешает старту
func ensureIndexes(db *mongo.Database, cfg *config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := repository.EnsureReviewIndexes(ctx, db, cfg.MongoDB.ReviewsCollection); err != nil {
		logger.Warn().Err(err).Msg("Failed to create review indexes")
	}
	if err := repository.EnsureOwnerIndex(ctx, db, cfg.MongoDB.WishlistCollection, cfg.Wishlist.OwnerField); err != nil {
		logger.Warn().Err(err).Msg("Failed to create wishlist owner index")
	}
}
