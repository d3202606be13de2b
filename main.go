package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/TrungQuaan22/ProjectIII-Elearning/config"
	"github.com/TrungQuaan22/ProjectIII-Elearning/controllers"
	"github.com/TrungQuaan22/ProjectIII-Elearning/database"
	"github.com/TrungQuaan22/ProjectIII-Elearning/kafka"
	"github.com/TrungQuaan22/ProjectIII-Elearning/logger"
	"github.com/TrungQuaan22/ProjectIII-Elearning/middleware"
	"github.com/TrungQuaan22/ProjectIII-Elearning/models"
	awspkg "github.com/TrungQuaan22/ProjectIII-Elearning/pkg/aws"
	"github.com/TrungQuaan22/ProjectIII-Elearning/repository"
	"github.com/TrungQuaan22/ProjectIII-Elearning/routes"
	"github.com/TrungQuaan22/ProjectIII-Elearning/services"
	"github.com/TrungQuaan22/ProjectIII-Elearning/vnpay"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Log.Fatal("Could not connect to PostgreSQL", zap.Error(err))
	}
	if err := models.Migrate(db); err != nil {
		logger.Log.Fatal("Migration failed", zap.Error(err))
	}

	redisClient, err := database.NewRedisClient(cfg.RedisURL)
	if err != nil {
		logger.Log.Fatal("Could not connect to Redis", zap.Error(err))
	}

	// Repositories
	userRepo := repository.NewGormUserRepository(db)
	courseRepo := repository.NewGormCourseRepository(db)
	orderRepo := repository.NewGormOrderRepository(db)
	enrollmentRepo := repository.NewGormEnrollmentRepository(db)
	cartRepo := repository.NewRedisCartRepository(redisClient, cfg.CartTTL)

	// Gateway client
	gateway := vnpay.NewClient(vnpay.Config{
		TmnCode:   cfg.VNPayTmnCode,
		Secret:    cfg.VNPaySecret,
		Host:      cfg.VNPayHost,
		ReturnURL: cfg.VNPayReturnURL,
	})

	// Event publishers (best-effort)
	var publishers []services.PaymentEventPublisher
	producer := kafka.NewPaymentEventProducer(strings.Split(cfg.KafkaBrokers, ","), cfg.PaymentTopic)
	defer producer.Close()
	publishers = append(publishers, producer)

	if cfg.PaymentSNSArn != "" {
		awsCfg, err := awspkg.LoadAWSConfig(context.Background())
		if err != nil {
			logger.Log.Warn("AWS config unavailable, SNS fanout disabled", zap.Error(err))
		} else {
			publishers = append(publishers, awspkg.NewSNSPaymentPublisher(awsCfg, cfg.PaymentSNSArn))
		}
	}

	// Services
	tokenService := services.NewTokenService(cfg.JWTSecret)
	authService := services.NewAuthService(userRepo, tokenService)
	courseService := services.NewCourseService(courseRepo)
	cartService := services.NewCartService(cartRepo, courseRepo)
	orderService := services.NewOrderService(orderRepo, courseRepo, cartRepo)
	paymentService := services.NewPaymentService(orderRepo, cartRepo, gateway, publishers...)
	enrollmentService := services.NewEnrollmentService(enrollmentRepo, courseRepo)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(middleware.RateLimit())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Register(r, tokenService, routes.Controllers{
		Auth:       controllers.NewAuthController(authService),
		Course:     controllers.NewCourseController(courseService),
		Cart:       controllers.NewCartController(cartService),
		Order:      controllers.NewOrderController(orderService),
		Payment:    controllers.NewPaymentController(paymentService),
		Enrollment: controllers.NewEnrollmentController(enrollmentService),
	})

	logger.Log.Info("Server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Log.Fatal("Error starting server", zap.Error(err))
	}
}
