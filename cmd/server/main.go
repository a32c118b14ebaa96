package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"apptbook/internal/config"
	"apptbook/internal/database"
	"apptbook/internal/handler"
	"apptbook/internal/queue"
	"apptbook/internal/repository"
	"apptbook/internal/router"
)

func main() {
	// .env is a developer convenience; in production the variables come
	// from the environment and the file is simply absent.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("database: %v", err)
	}

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	slots := repository.NewSlotRepo(db)
	bookings := repository.NewBookingRepo(db)

	if err := users.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword, cfg.BcryptCost); err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting and slot cache disabled")
	}

	e := echo.New()
	router.Register(e, router.Deps{
		Cfg:     cfg,
		Redis:   rdb,
		Auth:    handler.NewAuthHandler(cfg, users, tokens),
		Slot:    handler.NewSlotHandler(slots),
		Booking: handler.NewBookingHandler(bookings),
		Admin:   handler.NewAdminHandler(bookings, slots),
	})

	// Background audit-log consumer; runs its own reconnect loop.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
