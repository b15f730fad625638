package middleware

import (
	"strings"
	"time"

	"recipe-box/domain"
	"recipe-box/internal/api/presenters"
	"recipe-box/internal/utils"
	"recipe-box/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		RecoverMiddleware() fiber.Handler
		RequestID() fiber.Handler
		RequestLogger() fiber.Handler
		RateLimiter(max int, window time.Duration) fiber.Handler
		// AuthMiddleware requires a bearer token when enabled and stores the
		// username under the "user" local.
		AuthMiddleware(jwtService jwt.JWTService, enabled bool) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	})
}

func (m *middleware) RecoverMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e any) {
			utils.Logger.Error("panic recovered",
				zap.String("path", c.Path()),
				zap.Any("panic", e),
			)
		},
	})
}

func (m *middleware) RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals("request_id", id)
		c.Set("X-Request-ID", id)
		return c.Next()
	}
}

func (m *middleware) RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		utils.Logger.Info("request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
			zap.Any("request_id", c.Locals("request_id")),
		)
		return err
	}
}

func (m *middleware) RateLimiter(max int, window time.Duration) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(domain.Fail[any]("too many requests, slow down"))
		},
	})
}

func (m *middleware) AuthMiddleware(jwtService jwt.JWTService, enabled bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !enabled {
			return c.Next()
		}

		header := c.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			return presenters.ErrorResponse(c, domain.ErrTokenNotFound.Error(), domain.ErrTokenNotFound)
		}

		user, err := jwtService.GetUserByToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return presenters.ErrorResponse(c, err.Error(), err)
		}

		c.Locals("user", user)
		return c.Next()
	}
}
