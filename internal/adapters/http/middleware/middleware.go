package middleware

import (
	"errors"
	"log"
	"time"

	"library-desk/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Request budgets per client IP and minute
const (
	deskRequestsPerMinute    = 100
	paymentRequestsPerMinute = 10
)

// Setup installs the desk-wide middleware chain
func Setup(app *fiber.App, cfg *config.Config) {
	app.Use(recover.New())

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// The API only serves JSON, nothing is embedded cross-origin
	app.Use(helmet.New(helmet.Config{
		XFrameOptions:             "DENY",
		ReferrerPolicy:            "no-referrer",
		CrossOriginResourcePolicy: "same-origin",
		PermissionPolicy:          "geolocation=(), microphone=(), camera=(), payment=()",
	}))

	app.Use(rateLimit(deskRequestsPerMinute, "desk", "Too many requests, please wait a moment"))

	format := "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n"
	if !cfg.IsDev() {
		format = "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n"
	}
	app.Use(logger.New(logger.Config{
		Format:     format,
		TimeFormat: "2006-01-02 15:04:05",
	}))

	origins := cfg.GetAllowedOrigins()
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		// Credentials cannot be combined with a wildcard origin
		AllowCredentials: origins != "*",
	}))
}

// StrictRateLimiter guards fee payments and refunds, which reach the payment provider
func StrictRateLimiter() fiber.Handler {
	return rateLimit(paymentRequestsPerMinute, "payments", "Too many payment attempts, please wait before trying again")
}

func rateLimit(limit int, bucket, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        limit,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return bucket + ":" + c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"error":   message,
			})
		},
	})
}

// CustomErrorHandler turns errors escaping a handler into the JSON error envelope
func CustomErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	} else {
		log.Printf("❌ Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}
