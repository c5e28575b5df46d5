package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"arfurnish/internal/adapter/api"
	"arfurnish/internal/adapter/api/handler"
	apimiddleware "arfurnish/internal/adapter/api/middleware"
	"arfurnish/internal/adapter/api/router"
	"arfurnish/internal/adapter/repository"
	"arfurnish/internal/infrastructure/firebase"
	"arfurnish/internal/infrastructure/storage"
	"arfurnish/internal/usecase"
	"arfurnish/pkg/config"
	"arfurnish/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption

	// Service account JSON via env for production, file path for local dev.
	serviceAccountPath := ""
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath = os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, cfg.FirebaseProject, serviceAccountPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)
	wishlistRepo := repository.NewFirestoreWishlistRepository(firestoreClient)
	ticketRepo := repository.NewFirestoreTicketRepository(firestoreClient)
	sceneRepo := repository.NewFirestoreSceneRepository(firestoreClient)
	categoryRepo := repository.NewFirestoreCategoryRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient)
	userUseCase := usecase.NewUserUseCase(userRepo, wishlistRepo, firebaseAuthClient)
	productUseCase := usecase.NewProductUseCase(productRepo, categoryRepo, userRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, productRepo)
	wishlistUseCase := usecase.NewWishlistUseCase(wishlistRepo, productRepo)
	ticketUseCase := usecase.NewTicketUseCase(ticketRepo)
	sceneUseCase := usecase.NewSceneUseCase(sceneRepo, productRepo)
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo)
	adminUseCase := usecase.NewAdminUseCase(userRepo, firebaseAuthClient)

	if err := adminUseCase.EnsureDefaultAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword, cfg.AdminName); err != nil {
		logger.Error("Failed to bootstrap default admin: %v", err)
	}

	handler.Setup(
		authUseCase,
		userUseCase,
		productUseCase,
		orderUseCase,
		wishlistUseCase,
		ticketUseCase,
		sceneUseCase,
		categoryUseCase,
		adminUseCase,
		storageClient,
	)

	e := echo.New()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	// Large enough for a thumbnail plus a textured glb/usdz model upload.
	e.Use(echomiddleware.BodyLimit("64M"))

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	roleMiddleware := apimiddleware.NewRoleMiddleware(userRepo)

	window := time.Duration(cfg.RateLimitWindow) * time.Second
	apiLimiter := apimiddleware.NewRateLimiter(cfg.RateLimitRequests, window)
	authLimiter := apimiddleware.NewRateLimiter(10, window)

	router.Setup(e, authMiddleware, roleMiddleware, authLimiter, apiLimiter)

	logger.Info("Starting server on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
