package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config 应用配置
type Config struct {
	Env         string
	Port        string
	DatabaseURL string

	// JWT 相关
	JWTSecret   string
	JWTIssuer   string
	JWTAudience string
	JWTExpiry   time.Duration

	// CORS 允许的来源（为空表示允许所有）
	CorsOrigins []string
}

// Load 加载配置
func Load() *Config {
	expiryHours, _ := strconv.Atoi(getEnv("JWT_EXPIRY_HOURS", "24"))

	dbUser := getEnv("DB_USER", "postgres")
	dbPass := getEnv("DB_PASSWORD", "postgres")
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbName := getEnv("DB_NAME", "videoplatform")
	dbSSL := getEnv("DB_SSLMODE", "disable")

	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		dbUser, dbPass, dbHost, dbPort, dbName, dbSSL)

	jwtSecret := getEnv("JWT_SECRET", "your-secret-key-change-in-production")

	if getEnv("APP_ENV", "development") == "production" && jwtSecret == "your-secret-key-change-in-production" {
		fmt.Println("【严重警告】生产环境正在使用默认密钥！请立即设置 JWT_SECRET 环境变量。")
	}

	var corsOrigins []string
	if raw := os.Getenv("CORS_ORIGINS"); raw != "" {
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				corsOrigins = append(corsOrigins, origin)
			}
		}
	}

	return &Config{
		Env:         getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "5005"),
		DatabaseURL: dbURL,
		JWTSecret:   jwtSecret,
		JWTIssuer:   getEnv("JWT_ISSUER", "VideoPlatform.Api"),
		JWTAudience: getEnv("JWT_AUDIENCE", "VideoPlatform.Client"),
		JWTExpiry:   time.Duration(expiryHours) * time.Hour,
		CorsOrigins: corsOrigins,
	}
}

// IsDevelopment 是否为开发环境
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
