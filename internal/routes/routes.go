// Package routes defines the API routing configuration. It wires
// repositories, services and handlers together and groups routes by
// resource with their middleware.
package routes

import (
	"time"

	"minimart/internal/handlers"
	"minimart/internal/middleware"
	"minimart/internal/repositories"
	"minimart/internal/repositories/cache"
	"minimart/internal/services/auth"
	"minimart/internal/services/catalog"
	"minimart/internal/services/creditcard"
	"minimart/internal/services/ledger"
	"minimart/internal/services/order"
	"minimart/internal/services/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, db *gorm.DB, cacheSvc *cache.CacheService) {
	// Repositories
	userRepo := repositories.NewUserRepository(db, cacheSvc)
	transactionRepo := repositories.NewTransactionRepository(db, cacheSvc)
	catalogRepo := repositories.NewCatalogRepository(db, cacheSvc)
	orderRepo := repositories.NewOrderRepository(db)

	// Services
	authService := auth.NewService(userRepo)
	userService := user.NewService(userRepo)
	ledgerService := ledger.NewService(transactionRepo)
	catalogService := catalog.NewService(catalogRepo)
	orderService := order.NewService(orderRepo, userRepo, catalogRepo)
	tokenizer := creditcard.NewTokenizer()

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	transactionHandler := handlers.NewTransactionHandler(ledgerService, userService, tokenizer)
	productHandler := handlers.NewProductHandler(catalogService)
	orderHandler := handlers.NewOrderHandler(orderService)

	app.Get("/health", handlers.HealthCheck)

	api := app.Group("/api")
	authRequired := middleware.Auth()

	// Registration and login take the brunt of abusive traffic.
	signupLimiter := limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Minute,
	})

	// Users
	users := api.Group("/user")
	users.Post("/", signupLimiter, userHandler.Register)
	users.Post("/login", signupLimiter, authHandler.Login)
	users.Post("/change_password", authRequired, authHandler.ChangePassword)
	users.Get("/", userHandler.List)
	users.Get("/email/:email", userHandler.GetByEmail)
	users.Get("/user_id/:id", userHandler.GetByID)
	users.Put("/:id", authRequired, userHandler.Update)
	users.Delete("/:id", authRequired, userHandler.Delete)

	// Wallet ledger
	transactions := api.Group("/transaction")
	transactions.Post("/", authRequired, transactionHandler.Create)
	transactions.Get("/", transactionHandler.List)
	transactions.Get("/user/:user_id", transactionHandler.ListByUser)
	transactions.Put("/user/:user_id", authRequired, transactionHandler.UpdateByUser)
	transactions.Get("/:id", transactionHandler.GetByID)
	transactions.Put("/:id", authRequired, transactionHandler.UpdateByID)
	transactions.Delete("/:id", authRequired, transactionHandler.Delete)

	// Catalog. Static segments before the :id routes so that
	// /product/group is not swallowed by /product/:id.
	products := api.Group("/product")
	products.Post("/search", productHandler.Search)

	products.Post("/group", productHandler.CreateGroup)
	products.Get("/group", productHandler.ListGroups)
	products.Get("/group/:id", productHandler.GetGroup)
	products.Put("/group/:id", productHandler.UpdateGroup)
	products.Delete("/group/:id", productHandler.DeleteGroup)

	products.Post("/category", productHandler.CreateCategory)
	products.Get("/category", productHandler.ListCategories)
	products.Get("/category/:id", productHandler.GetCategory)
	products.Put("/category/:id", productHandler.UpdateCategory)
	products.Delete("/category/:id", productHandler.DeleteCategory)

	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Orders
	orders := api.Group("/order")
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/date", orderHandler.ListByDate)
	orders.Get("/date_range", orderHandler.ListByDateRange)
	orders.Get("/user/:user_id", orderHandler.ListByUser)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)
	orders.Delete("/:id", orderHandler.Delete)

	// Order line items
	details := api.Group("/order_detail")
	details.Post("/", orderHandler.CreateDetail)
	details.Get("/", orderHandler.ListDetails)
	details.Get("/order/:order_id", orderHandler.ListDetailsByOrder)
	details.Get("/:id", orderHandler.GetDetail)
	details.Put("/:id", orderHandler.UpdateDetail)
	details.Delete("/:id", orderHandler.DeleteDetail)
}
