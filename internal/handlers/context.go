package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func requestUserID(c *fiber.Ctx) (int64, error) {
	userIDValue := c.Locals("user_id")
	userIDStr, ok := userIDValue.(string)
	if !ok {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseInt(userIDStr, 10, 64)
}
