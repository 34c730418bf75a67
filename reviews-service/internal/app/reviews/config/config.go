package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Log      LogConfig
	MongoDB  MongoDBConfig
	Wishlist WishlistConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
}

type ServerConfig struct {
	Host string // Адрес хоста (по умолчанию 0.0.0.0)
	Port string // Порт сервера (по умолчанию 5000)
}

type LogConfig struct {
	Level        string
	LogstashAddr string // Пусто - только stdout
}

type MongoDBConfig struct {
	URI                string
	Database           string
	ReviewsCollection  string
	WishlistCollection string
	UsersCollection    string
}

type WishlistConfig struct {
	OwnerField string // Поле документа wishlist, по которому фильтрует /mywatchlist
}

type RedisConfig struct {
	Enabled         bool
	Host            string
	Port            string
	Password        string
	DB              int
	TopReviewsTTL   time.Duration
	RefreshSchedule string // cron-выражение для прогрева кеша топ-отзывов
}

type KafkaConfig struct {
	Enabled bool
	Brokers []string
	Topic   string // Топик для событий REVIEW_*
}

// Load читает конфигурацию из окружения; .env в рабочей директории подгружается,
// если он есть, и не перетирает уже заданные переменные
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB value: %w", err)
	}

	redisEnabled, err := strconv.ParseBool(getEnv("REDIS_ENABLED", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_ENABLED value: %w", err)
	}

	cacheTTL, err := time.ParseDuration(getEnv("TOP_REVIEWS_CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOP_REVIEWS_CACHE_TTL value: %w", err)
	}

	kafkaEnabled, err := strconv.ParseBool(getEnv("KAFKA_ENABLED", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid KAFKA_ENABLED value: %w", err)
	}

	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnv("SERVER_PORT", "5000"),
		},
		Log: LogConfig{
			Level:        getEnv("LOG_LEVEL", "info"),
			LogstashAddr: getEnv("LOGSTASH_ADDR", ""),
		},
		MongoDB: MongoDBConfig{
			URI:                getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database:           getEnv("MONGODB_DATABASE", "AllReviewsDB"),
			ReviewsCollection:  getEnv("MONGODB_REVIEWS_COLLECTION", "reviews"),
			WishlistCollection: getEnv("MONGODB_WISHLIST_COLLECTION", "wishlist"),
			UsersCollection:    getEnv("MONGODB_USERS_COLLECTION", "users"),
		},
		Wishlist: WishlistConfig{
			OwnerField: getEnv("WISHLIST_OWNER_FIELD", "email"),
		},
		Redis: RedisConfig{
			Enabled:         redisEnabled,
			Host:            getEnv("REDIS_HOST", "localhost"),
			Port:            getEnv("REDIS_PORT", "6379"),
			Password:        getEnv("REDIS_PASSWORD", ""),
			DB:              redisDB,
			TopReviewsTTL:   cacheTTL,
			RefreshSchedule: getEnv("TOP_REVIEWS_REFRESH_SCHEDULE", "@every 1m"),
		},
		Kafka: KafkaConfig{
			Enabled: kafkaEnabled,
			Brokers: splitList(getEnv("KAFKA_BROKERS", "localhost:9092")),
			Topic:   getEnv("KAFKA_TOPIC", "review_events"),
		},
	}, nil
}

func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func (c *RedisConfig) Address() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
