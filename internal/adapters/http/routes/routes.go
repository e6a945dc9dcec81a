package routes

import (
	"time"

	"library-desk/internal/adapters/http/handlers"
	"library-desk/internal/adapters/http/middleware"
	"library-desk/internal/adapters/payment"
	"library-desk/internal/adapters/persistence/repositories"
	"library-desk/internal/config"
	"library-desk/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func init() {
	// Money goes over the wire as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

// NewApp creates the Fiber app with the shared error handler, JSON codec and middlewares
func NewApp(cfg *config.Config) *fiber.App {
	json := jsoniter.ConfigCompatibleWithStandardLibrary
	app := fiber.New(fiber.Config{
		AppName:      "Library Desk API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})

	middleware.Setup(app, cfg)
	return app
}

// NewGateway builds the payment gateway selected by configuration
func NewGateway(cfg *config.Config) services.PaymentGateway {
	if cfg.Payment.Mode == config.PaymentModeHTTP {
		return payment.NewHTTPGateway(payment.HTTPGatewayConfig{
			BaseURL:     cfg.Payment.GatewayURL,
			APIKey:      cfg.Payment.APIKey,
			Timeout:     cfg.Payment.Timeout,
			MaxFailures: cfg.Payment.BreakerMaxFailures,
			Cooldown:    cfg.Payment.BreakerCooldown,
		})
	}
	return payment.NewSimulatedGateway()
}

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config, gateway services.PaymentGateway) {
	// Initialize repositories
	bookRepo := repositories.NewBookRepository(db)
	loanRepo := repositories.NewLoanRepository(db)

	// Initialize services
	feeService := services.NewFeeService(bookRepo, loanRepo)
	loanService := services.NewLoanService(bookRepo, loanRepo, feeService)
	catalogService := services.NewCatalogService(bookRepo)
	reportService := services.NewReportService(loanRepo, feeService)
	paymentService := services.NewPaymentService(bookRepo, feeService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cfg, gateway)
	catalogHandler := handlers.NewCatalogHandler(catalogService, loanService)
	loanHandler := handlers.NewLoanHandler(loanService)
	patronHandler := handlers.NewPatronHandler(feeService, reportService)
	paymentHandler := handlers.NewPaymentHandler(paymentService, gateway)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)

	// Catalog
	books := apiV1.Group("/books")
	books.Get("/", middleware.CacheControl(30*time.Second), catalogHandler.ListBooks)
	books.Post("/", catalogHandler.AddBook)

	// Loans
	loans := apiV1.Group("/loans", middleware.NoCacheHeaders())
	loans.Post("/", loanHandler.Borrow)
	loans.Post("/return", loanHandler.Return)

	// Patrons
	patrons := apiV1.Group("/patrons", middleware.NoCacheHeaders())
	patrons.Get("/:patronId/fees/:bookId", patronHandler.GetFee)
	patrons.Get("/:patronId/status", patronHandler.GetStatus)

	// Payments
	payments := apiV1.Group("/payments", middleware.NoCacheHeaders(), middleware.StrictRateLimiter())
	payments.Post("/", paymentHandler.PayFees)
	payments.Post("/:transactionId/refund", paymentHandler.Refund)
}
