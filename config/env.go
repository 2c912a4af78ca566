package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv          string
	Serverless      bool
	Port            string
	DatabaseURL     string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSSLMode       string
	MigrationsDir   string
	RedisURL        string
	RedisAddr       string
	RedisPassword   string
	JWTSecret       string
	JWTExpiry       time.Duration
	UploadDir       string
	MaxUploadSize   int64
	CartTTL         time.Duration
	CheckoutTimeout time.Duration
	OriginURL       string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	CloudinaryURL       string
	CloudinaryFolder    string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPFrom string
}

var AppConfig *Config

func LoadConfig() *Config {
	if os.Getenv("VERCEL") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("Warning: .env file not found, using system environment variables")
		}
	}

	maxUploadSize, _ := strconv.ParseInt(os.Getenv("MAX_UPLOAD_SIZE"), 10, 64)
	if maxUploadSize == 0 {
		maxUploadSize = 5242880
	}

	smtpPort, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		smtpPort = 587
	}

	AppConfig = &Config{
		AppEnv:          getEnv("APP_ENV", "development"),
		Serverless:      os.Getenv("VERCEL") != "",
		Port:            getEnv("APP_PORT", getEnv("PORT", "8082")),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      getEnv("DB_PASSWORD", "postgres"),
		DBName:          getEnv("DB_NAME", "furniture_shop"),
		DBSSLMode:       getEnv("DB_SSLMODE", "disable"),
		MigrationsDir:   getEnv("MIGRATIONS_DIR", "database/migration"),
		RedisURL:        os.Getenv("REDIS_URL"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		JWTSecret:       getEnv("JWT_SECRET", "secret"),
		JWTExpiry:       getDuration("JWT_EXPIRY", 24*time.Hour),
		UploadDir:       getEnv("UPLOAD_DIR", "./uploads"),
		MaxUploadSize:   maxUploadSize,
		CartTTL:         getDuration("CART_TTL", 72*time.Hour),
		CheckoutTimeout: getDuration("CHECKOUT_TIMEOUT", 10*time.Second),
		OriginURL:       os.Getenv("ORIGIN_URL"),

		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		CloudinaryURL:       os.Getenv("CLOUDINARY_URL"),
		CloudinaryFolder:    getEnv("CLOUDINARY_FOLDER", "furniture/products"),

		SMTPHost: os.Getenv("SMTP_HOST"),
		SMTPPort: smtpPort,
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),
		SMTPFrom: getEnv("SMTP_FROM", "orders@furniture.shop"),
	}

	return AppConfig
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func (c *Config) IsServerless() bool {
	return c.Serverless
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}
