package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"CrowdCheck/internal/trust"
)

// Config — всё окружение процесса, собирается один раз на старте
// и дальше передаётся явно (никаких глобалов).
type Config struct {
	Host string
	Port string

	DatabaseURL   string // DSN постгреса, обязателен
	SessionSecret string // секрет подписи сессий, обязателен

	// Учётка администратора для идемпотентного бутстрапа.
	// Обязательна: захардкоженных паролей в коде быть не должно.
	AdminLogin    string
	AdminPassword string

	TrustPolicy trust.Policy

	// Redis опционален: пустой адрес отключает кэш статистики.
	RedisAddr string
	RedisPass string
	RedisDB   int

	HTTPS bool // Secure-куки за HTTPS-прокси
}

// Load читает .env (если есть) и окружение.
// Отсутствие обязательной переменной — ошибка старта, без fallback-значений.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Host:          getenv("HOST", "127.0.0.1"),
		Port:          getenv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		AdminLogin:    os.Getenv("ADMIN_LOGIN"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPass:     os.Getenv("REDIS_PASS"),
		HTTPS:         os.Getenv("APP_HTTPS") == "1",
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("config: DATABASE_URL is required")
	}
	if cfg.SessionSecret == "" {
		return nil, errors.New("config: SESSION_SECRET is required")
	}
	if cfg.AdminLogin == "" || cfg.AdminPassword == "" {
		return nil, errors.New("config: ADMIN_LOGIN and ADMIN_PASSWORD are required")
	}

	policy, err := trust.ParsePolicy(os.Getenv("TRUST_POLICY"))
	if err != nil {
		return nil, err
	}
	cfg.TrustPolicy = policy

	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.New("config: REDIS_DB must be an integer")
		}
		cfg.RedisDB = n
	}

	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
