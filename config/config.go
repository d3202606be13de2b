package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	Port             string
	Env              string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     string
	PostgresSSLMode  string
	PostgresTimeZone string
	RedisURL         string
	CartTTL          time.Duration
	JWTSecret        string
	VNPayTmnCode     string
	VNPaySecret      string
	VNPayHost        string
	VNPayReturnURL   string
	KafkaBrokers     string
	PaymentTopic     string
	PaymentSNSArn    string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		Env:              getEnv("APP_ENV", "development"),
		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		PostgresHost:     os.Getenv("POSTGRES_HOST"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		PostgresTimeZone: getEnv("POSTGRES_TIMEZONE", "Asia/Ho_Chi_Minh"),
		RedisURL:         getEnv("REDIS_URL", "redis://localhost:6379"),
		CartTTL:          time.Hour * 24 * 7,
		JWTSecret:        os.Getenv("JWT_SECRET"),
		VNPayTmnCode:     os.Getenv("VNPAY_TMN_CODE"),
		VNPaySecret:      os.Getenv("VNPAY_SECURE_SECRET"),
		VNPayHost:        getEnv("VNPAY_HOST", "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html"),
		VNPayReturnURL:   os.Getenv("VNPAY_RETURN_URL"),
		KafkaBrokers:     getEnv("KAFKA_BROKERS", "localhost:9092"),
		PaymentTopic:     getEnv("PAYMENT_TOPIC", "payment.events"),
		PaymentSNSArn:    os.Getenv("PAYMENT_SNS_TOPIC_ARN"),
	}

	if cfg.PostgresUser == "" || cfg.PostgresPassword == "" || cfg.PostgresDB == "" || cfg.PostgresHost == "" {
		return nil, fmt.Errorf("database config incomplete")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	// The payment integration cannot run without gateway credentials; refusing
	// to start beats signing requests with an empty secret.
	if cfg.VNPayTmnCode == "" || cfg.VNPaySecret == "" || cfg.VNPayReturnURL == "" {
		return nil, fmt.Errorf("vnpay config incomplete: VNPAY_TMN_CODE, VNPAY_SECURE_SECRET and VNPAY_RETURN_URL are required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
