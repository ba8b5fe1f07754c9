package main

import (
	"context"
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"CrowdCheck/internal/config"
	"CrowdCheck/internal/db"
	"CrowdCheck/internal/handlers"
	"CrowdCheck/internal/sessions"
	"CrowdCheck/internal/store"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()

	conn, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer conn.Close()
	if err := db.EnsureSchema(ctx, conn); err != nil {
		log.Fatalf("%v", err)
	}
	log.Info("db: connected, schema ensured")

	campaigns := store.NewCampaignStore(conn)
	admins := store.NewAdminStore(conn)

	// бутстрап единственной админской учётки (идемпотентно)
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("bcrypt: %v", err)
	}
	if err := admins.EnsureAdmin(ctx, cfg.AdminLogin, string(hash)); err != nil {
		log.Fatalf("%v", err)
	}

	// Redis для кэша статистики — опционален
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		if _, err := rdb.Ping(ctx).Result(); err != nil {
			log.Fatalf("redis: ping failed: %v", err)
		}
		log.Info("redis: stats cache enabled")
	}

	sm := sessions.NewManager(cfg.SessionSecret, cfg.HTTPS)
	h := handlers.New(campaigns, admins, sm, cfg.TrustPolicy, log, rdb)

	addr := cfg.Host + ":" + cfg.Port
	log.WithField("policy", string(cfg.TrustPolicy)).Infof("listening on %s", addr)
	if err := http.ListenAndServe(addr, h.Routes()); err != nil {
		log.Fatal(err)
	}
}
