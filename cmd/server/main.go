// Copyright (c) 2025 Hearsay
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"github.com/hearsay-social/hearsay/graph"
	"github.com/hearsay-social/hearsay/internal/cache"
	"github.com/hearsay-social/hearsay/internal/database/postgres"
	"github.com/hearsay-social/hearsay/internal/pkg/log"
	"github.com/hearsay-social/hearsay/internal/platform/config"
	"github.com/hearsay-social/hearsay/internal/platform/email"
	"github.com/hearsay-social/hearsay/internal/session"
	postRepository "github.com/hearsay-social/hearsay/posts/repository"
	postServices "github.com/hearsay-social/hearsay/posts/services"
	userRepository "github.com/hearsay-social/hearsay/users/repository"
	userServices "github.com/hearsay-social/hearsay/users/services"
	voteRepository "github.com/hearsay-social/hearsay/votes/repository"
	voteServices "github.com/hearsay-social/hearsay/votes/services"
)

func main() {
	if err := run(); err != nil {
		log.Error("server exited: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx := context.Background()

	pgClient, err := postgres.NewClient(ctx, &cfg.Database.Postgres)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer pgClient.Close()

	if err := postgres.EnsureSchema(ctx, pgClient); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	redisCache, err := cache.NewRedisCache(&cfg.Cache)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer redisCache.Close()

	sender := email.NewFromConfig(&cfg.Email)

	userRepo := userRepository.NewPostgresUserRepository(pgClient)
	postRepo := postRepository.NewPostgresPostRepository(pgClient)
	voteRepo := voteRepository.NewPostgresVoteRepository(pgClient)

	userService := userServices.NewUserService(userRepo, redisCache, sender, userServices.ServiceConfig{
		AppName:   cfg.App.Name,
		WebDomain: cfg.App.WebDomain,
		EmailFrom: cfg.Email.From,
	})
	postService := postServices.NewPostService(postRepo)
	voteService := voteServices.NewVoteService(voteRepo, postRepo)

	sessionManager := session.NewManager(redisCache, cfg.Server.Production)

	schema := graphql.MustParseSchema(graph.Schema, graph.NewResolver(userService, postService, voteService))

	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigin,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowMethods:     "GET, POST, OPTIONS",
	}))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		if err := pgClient.HealthCheck(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "down"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	graphqlHandler := adaptor.HTTPHandler(&relay.Handler{Schema: schema})
	app.Post("/graphql",
		sessionManager.Middleware(),
		graph.Middleware(userRepo, voteRepo),
		graphqlHandler,
	)

	// Shut down cleanly on SIGINT/SIGTERM so in-flight requests finish.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Error("shutdown failed: %v", err)
		}
	}()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("listening on %s", addr)
	return app.Listen(addr)
}
