package handlers

import (
	"recipe-box/domain"

	"github.com/gofiber/fiber/v2"
)

func paramID(c *fiber.Ctx, name, invalidMessage string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id < 1 {
		return 0, domain.NewValidationError("%s", invalidMessage)
	}
	return uint(id), nil
}

// parseBody decodes the request body into out. Decoding failures, including
// JSON type mismatches, are reported as validation errors.
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return domain.NewValidationError("invalid request body: %s", err.Error())
	}
	return nil
}

func currentUser(c *fiber.Ctx) string {
	user, _ := c.Locals("user").(string)
	return user
}
