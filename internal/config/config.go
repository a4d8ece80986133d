package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	AuthToken   string
	// User repository backend: "memory" or "sqlite"
	UserStore  string
	SQLitePath string
	// Event publisher backend: "memory" or "kafka"
	EventPublisher string
	// Kafka Configuration
	KafkaBrokers      []string
	KafkaTopicDevices string
	KafkaTopicStock   string
	KafkaClientID     string
	KafkaAcks         string
	KafkaRetries      int
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Parse Kafka brokers (comma-separated)
	kafkaBrokersStr := getEnv("KAFKA_BROKERS", "localhost:9093")
	kafkaBrokers := strings.Split(kafkaBrokersStr, ",")
	for i, broker := range kafkaBrokers {
		kafkaBrokers[i] = strings.TrimSpace(broker)
	}

	return &Config{
		Environment:       getEnv("ENVIRONMENT", "development"),
		AuthToken:         getEnv("AUTH_TOKEN", "token"),
		UserStore:         getEnv("USER_STORE", "memory"),
		SQLitePath:        getEnv("SQLITE_PATH", "./smartstore.db"),
		EventPublisher:    getEnv("EVENT_PUBLISHER", "memory"),
		KafkaBrokers:      kafkaBrokers,
		KafkaTopicDevices: getEnv("KAFKA_TOPIC_DEVICES", "store.devices"),
		KafkaTopicStock:   getEnv("KAFKA_TOPIC_STOCK", "store.stock"),
		KafkaClientID:     getEnv("KAFKA_CLIENT_ID", "smartstore"),
		KafkaAcks:         getEnv("KAFKA_ACKS", "all"),
		KafkaRetries:      getEnvAsInt("KAFKA_RETRIES", 3),
	}
}

func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return result
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
