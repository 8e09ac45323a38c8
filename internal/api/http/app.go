package httpapi

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// AppName is reported by the health endpoint and fiber.
const AppName = "dashboard-backend"

// Options configures the fiber application.
type Options struct {
	// AllowedOrigins is the CORS allow-list. Credentials are always allowed,
	// so a wildcard origin is not accepted by the cors middleware.
	AllowedOrigins []string

	// DisableAccessLog turns off the request logger (used by tests).
	DisableAccessLog bool
}

var allMethods = strings.Join([]string{
	fiber.MethodGet,
	fiber.MethodHead,
	fiber.MethodPost,
	fiber.MethodPut,
	fiber.MethodPatch,
	fiber.MethodDelete,
	fiber.MethodConnect,
	fiber.MethodOptions,
	fiber.MethodTrace,
}, ",")

// NewApp builds the fiber app with the centralized error handler and global middleware.
// Routes are registered separately with RegisterRoutes.
func NewApp(opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               AppName,
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          30 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	if !opts.DisableAccessLog {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		}))
	}
	app.Use(recover.New())

	// Empty AllowHeaders makes the middleware echo Access-Control-Request-Headers back.
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(opts.AllowedOrigins, ","),
		AllowMethods:     allMethods,
		AllowHeaders:     "",
		AllowCredentials: true,
	}))

	return app
}
