package handlers

import (
	"errors"
	"strings"

	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	eventws "github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/internal/websocket"
	"github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/pkg/utils"
)

// EventFeedHandler upgrades authenticated clients onto the gamification
// event feed.
type EventFeedHandler struct {
	hub       *eventws.Hub
	jwtSecret string
}

func NewEventFeedHandler(hub *eventws.Hub, jwtSecret string) *EventFeedHandler {
	return &EventFeedHandler{hub: hub, jwtSecret: jwtSecret}
}

func (h *EventFeedHandler) WebSocketAuth(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return c.Status(fiber.StatusUpgradeRequired).JSON(fiber.Map{"error": "WebSocket upgrade required"})
	}

	claims, err := h.parseWSClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
	}

	c.Locals("user_id", claims.UserID)
	c.Locals("role", claims.Role)
	return c.Next()
}

func (h *EventFeedHandler) HandleWebSocket(conn *websocket.Conn) {
	userID, _ := conn.Locals("user_id").(string)
	client := eventws.NewClient(h.hub, conn, userID)

	h.hub.Register(client)
	go client.WritePump()
	client.ReadPump()
}

func (h *EventFeedHandler) parseWSClaims(c *fiber.Ctx) (*utils.Claims, error) {
	tokenString := strings.TrimSpace(c.Query("token"))
	if tokenString == "" {
		authHeader := strings.TrimSpace(c.Get("Authorization"))
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}
	}

	if tokenString == "" {
		return nil, errors.New("missing token")
	}

	return utils.ValidateToken(tokenString, h.jwtSecret)
}
