package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"estate-app/internal/config"
	"estate-app/internal/handler"
	"estate-app/internal/repository"
	"estate-app/internal/services"
	"estate-app/internal/utils"
)

func main() {
	baseCtx := context.Background()
	ctx, shutdownManager := utils.NewShutdownManager(baseCtx)
	shutdownManager.StartListening()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}

	shutdownManager.Register(func(ctx context.Context) error {
		log.Println("[SHUTDOWN] Closing MongoDB connection...")
		return mongoClient.Disconnect(ctx)
	})

	db := mongoClient.Database(cfg.MongoDB)

	// Role cache is optional; the admin gate falls back to Mongo when
	// REDIS_URL is unset.
	var cache *utils.RedisClient
	if cfg.RedisURL != "" {
		cache, err = utils.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatal("Failed to connect to Redis:", err)
		}
		shutdownManager.Register(func(ctx context.Context) error {
			log.Println("[SHUTDOWN] Closing Redis connection...")
			return cache.Close()
		})
	}

	userRepo := repository.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal("Failed to create user indexes:", err)
	}
	propertyRepo := repository.NewPropertyRepository(db)
	wishlistRepo := repository.NewWishlistRepository(db)
	offerRepo := repository.NewOfferRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	jwtUtil := utils.NewJWTUtil(cfg.JWTSecret)
	userService := services.NewUserService(userRepo, cache)
	propertyService := services.NewPropertyService(propertyRepo)
	wishlistService := services.NewWishlistService(wishlistRepo)
	offerService := services.NewOfferService(offerRepo)
	reviewService := services.NewReviewService(reviewRepo)
	paymentService := services.NewPaymentService(cfg.StripeSecretKey)

	authHandler := handler.NewAuthHandler(jwtUtil)
	userHandler := handler.NewUserHandler(userService)
	propertyHandler := handler.NewPropertyHandler(propertyService)
	wishlistHandler := handler.NewWishlistHandler(wishlistService)
	offerHandler := handler.NewOfferHandler(offerService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	router := gin.Default()
	router.Use(cors.Default())

	authenticate := utils.Authenticate(jwtUtil)
	requireAdmin := utils.RequireAdmin(userService.IsAdmin)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "server is running.")
	})
	router.POST("/jwt", authHandler.IssueToken)

	router.GET("/users", authenticate, requireAdmin, userHandler.GetAllUsers)
	router.GET("/users/admin/:email", authenticate, utils.RequireSelf("email"), userHandler.GetUserByEmail)
	router.POST("/users", userHandler.RegisterUser)
	router.PATCH("/users/admin/:id", authenticate, requireAdmin, userHandler.ChangeRole)
	router.DELETE("/users/:id", authenticate, requireAdmin, userHandler.DeleteUser)

	router.GET("/allProperty", propertyHandler.ListProperties)
	router.POST("/allProperty", propertyHandler.CreateProperty)
	router.GET("/allProperty/status", propertyHandler.ListVerifiedProperties)
	router.GET("/allProperty/:id", propertyHandler.GetProperty)
	router.PUT("/allProperty/:id", authenticate, propertyHandler.UpdateProperty)
	router.PATCH("/allProperty/:id", authenticate, requireAdmin, propertyHandler.UpdatePropertyStatus)
	router.DELETE("/allProperty/:id", authenticate, propertyHandler.DeleteProperty)

	router.GET("/wishlist/:email", authenticate, utils.RequireSelf("email"), wishlistHandler.GetWishlist)
	router.POST("/wishlist", authenticate, wishlistHandler.AddEntry)
	router.DELETE("/wishlist/:email/:id", authenticate, utils.RequireSelf("email"), wishlistHandler.RemoveEntry)

	router.GET("/offeredProperty", authenticate, offerHandler.ListOffers)
	router.POST("/offeredProperty", authenticate, offerHandler.CreateOffer)
	router.PATCH("/offeredProperty/:id", authenticate, offerHandler.UpdateOffer)

	router.GET("/reviews", reviewHandler.ListReviews)
	router.GET("/reviews/:email", reviewHandler.ListReviewsByReviewer)
	router.POST("/reviews", reviewHandler.CreateReview)
	router.DELETE("/reviews/:id", reviewHandler.DeleteReview)

	router.POST("/create-payment-intent", authenticate, paymentHandler.CreatePaymentIntent)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("server is running at port: %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	shutdownManager.Register(func(ctx context.Context) error {
		log.Println("[SHUTDOWN] Shutting down HTTP server...")
		return server.Shutdown(ctx)
	})

	select {}
}
