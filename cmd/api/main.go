package main

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	fbauth "firebase.google.com/go/v4/auth"

	"github.com/spacia-app/property-backend/config"
	"github.com/spacia-app/property-backend/internal/auth"
	"github.com/spacia-app/property-backend/internal/bootstrap"
	"github.com/spacia-app/property-backend/internal/cache"
	"github.com/spacia-app/property-backend/internal/db"
	"github.com/spacia-app/property-backend/internal/jobs"
	"github.com/spacia-app/property-backend/internal/notify"
	proprepo "github.com/spacia-app/property-backend/internal/properties/repository"
	propservice "github.com/spacia-app/property-backend/internal/properties/service"
	"github.com/spacia-app/property-backend/internal/users"
)

const serviceName = "property-backend"

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	database, err := db.Open(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer database.Close()

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("redis unavailable, listing cache disabled: %v", err)
			redisClient = nil
		}
	}

	var listingCache propservice.Cache
	if redisClient != nil {
		listingCache = cache.NewListings(redisClient, cache.DefaultTTL)
	}

	var gateway propservice.Gateway
	if cfg.SQS.QueueURL != "" {
		sqsGateway, err := notify.NewSQSGateway(ctx, cfg.SQS)
		if err != nil {
			log.Printf("sqs unavailable, inquiry notifications disabled: %v", err)
		} else {
			gateway = sqsGateway
		}
	} else {
		log.Println("SQS_QUEUE_URL not set, inquiry notifications disabled")
	}

	store := proprepo.NewRepo(database.Pool)
	userRepo := users.NewRepo(database.Pool)
	svc := propservice.New(store, userRepo, gateway, listingCache, cfg.Images.BaseURL)

	var authClient *fbauth.Client
	if cfg.Auth.FirebaseCredentialsPath != "" {
		authClient, err = auth.InitializeFirebase(ctx, cfg.Auth.FirebaseCredentialsPath)
		if err != nil {
			log.Fatalf("firebase: %v", err)
		}
	} else {
		log.Println("FIREBASE_CREDENTIALS_PATH not set, using dev identity headers")
	}

	scheduler := jobs.NewScheduler(svc)
	scheduler.Start()
	defer scheduler.Stop()

	bootstrap.SetGinMode(cfg.App.Environment)
	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		DB:          database.Pool,
		Redis:       redisClient,
		AuthClient:  authClient,
		Properties:  svc,
	})

	log.Printf("%s listening on :%s", serviceName, cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
