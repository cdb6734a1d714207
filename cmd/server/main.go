package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/greenloop/recycle-market/internal/config"
	"github.com/greenloop/recycle-market/internal/database"
	"github.com/greenloop/recycle-market/internal/handler"
	"github.com/greenloop/recycle-market/internal/middleware"
	"github.com/greenloop/recycle-market/internal/queue"
	"github.com/greenloop/recycle-market/internal/repository"
	"github.com/greenloop/recycle-market/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatalf("schema: %v", err)
	}
	cancel()

	// Redis is optional: without it the token denylist is a no-op and the
	// rate limiter passes through.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, logout revocation disabled")
	}
	denylist := repository.NewDenylist(rdb)

	users := repository.NewUserRepo(db)
	admins := repository.NewAdminRepo(db)
	carts := repository.NewCartRepo(db)
	checkouts := repository.NewCheckoutRepo(db)
	invoices := repository.NewInvoiceRepo(db)
	items := repository.NewItemRepo(db)

	identity := handler.NewIdentityResolver(users)

	h := router.Handlers{
		Auth:     handler.NewAuthHandler(cfg, users, denylist),
		Users:    handler.NewUserHandler(users),
		Carts:    handler.NewCartHandler(carts, identity),
		Checkout: handler.NewCheckoutHandler(checkouts),
		Invoices: handler.NewInvoiceHandler(invoices),
		Items:    handler.NewItemHandler(items),
		Admin:    handler.NewAdminHandler(cfg, admins),
	}

	e := echo.New()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	router.RegisterRoutes(e, h, cfg.JWTSecret, denylist)

	// Background consumer logs checkout confirmations; it reconnects on its
	// own and never takes the server down.
	go func() {
		if err := queue.StartCheckoutConsumer(); err != nil {
			log.Printf("checkout consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
