package routes

import (
	"time"

	"recipe-box/internal/api/handlers"
	"recipe-box/internal/middleware"
	"recipe-box/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	RecipeHandler  handlers.RecipeHandler
	DigestHandler  handlers.DigestHandler
	StealHandler   handlers.StealHandler
	CookHandler    handlers.CookHandler
	AuthHandler    handlers.AuthHandler
	HealthHandler  handlers.HealthHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
	AuthEnabled    bool
	RateLimitMax   int
	RateLimitEvery time.Duration
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.RecoverMiddleware())
	c.App.Use(c.Middleware.RequestID())
	c.App.Use(c.Middleware.RequestLogger())
	c.App.Use(c.Middleware.CORSMiddleware())
	if c.RateLimitMax > 0 {
		c.App.Use(c.Middleware.RateLimiter(c.RateLimitMax, c.RateLimitEvery))
	}
	c.GuestRoute()
	c.Auth()
	c.Recipes()
	c.Cooks()
}

func (c *Config) requireUser() fiber.Handler {
	return c.Middleware.AuthMiddleware(c.JWTService, c.AuthEnabled)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", c.HealthHandler.Ping)
	c.App.Get("/api/health", c.HealthHandler.Health)
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/v1/auth")
	auth.Post("/login", c.AuthHandler.Login)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")
	// read routes
	{
		recipes.Get("", c.RecipeHandler.ListRecipes)
		recipes.Get("/steal/prompt", c.StealHandler.StealPrompt)
		recipes.Get("/:id", c.RecipeHandler.GetRecipe)
		recipes.Get("/:id/cooks", c.CookHandler.ListCooks)
	}

	// write routes
	{
		recipes.Post("", c.requireUser(), c.RecipeHandler.CreateRecipe)
		recipes.Post("/digest", c.requireUser(), c.DigestHandler.DigestRecipe)
		recipes.Post("/steal", c.requireUser(), c.StealHandler.StealRecipe)
		recipes.Patch("/:id/notes", c.requireUser(), c.RecipeHandler.UpdateNotes)
		recipes.Delete("/:id", c.requireUser(), c.RecipeHandler.DeleteRecipe)
		recipes.Post("/:id/share", c.requireUser(), c.RecipeHandler.ShareRecipe)
		recipes.Post("/:id/ingredients", c.requireUser(), c.RecipeHandler.AddIngredient)
		recipes.Post("/:id/instructions", c.requireUser(), c.RecipeHandler.AddInstruction)
		recipes.Post("/:id/cooks", c.requireUser(), c.CookHandler.StartCook)
	}

	ingredients := c.App.Group("/api/v1/ingredients", c.requireUser())
	ingredients.Patch("/:id", c.RecipeHandler.EditIngredient)
	ingredients.Delete("/:id", c.RecipeHandler.DeleteIngredient)

	instructions := c.App.Group("/api/v1/instructions", c.requireUser())
	instructions.Patch("/:id", c.RecipeHandler.EditInstruction)
	instructions.Delete("/:id", c.RecipeHandler.DeleteInstruction)
}

func (c *Config) Cooks() {
	cooks := c.App.Group("/api/v1/cooks")
	cooks.Get("/:id", c.CookHandler.GetCook)
	cooks.Patch("/:id/notes", c.requireUser(), c.CookHandler.UpdateCookNotes)
	cooks.Delete("/:id", c.requireUser(), c.CookHandler.DeleteCook)
	cooks.Put("/:id/ingredients/:ingredientId", c.requireUser(), c.CookHandler.CheckIngredient)
	cooks.Put("/:id/instructions/:instructionId", c.requireUser(), c.CookHandler.CheckInstruction)
}
