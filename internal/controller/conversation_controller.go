package controller

import (
	"title-assist-be/internal/dto"
	"title-assist-be/internal/pkg/logger"
	"title-assist-be/internal/pkg/serverutils"
	"title-assist-be/internal/service"
	internalWS "title-assist-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type IConversationController interface {
	RegisterRoutes(r fiber.Router)
	StartSession(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
	SelectOption(ctx *fiber.Ctx) error
	GetTranscript(ctx *fiber.Ctx) error
	ServeWs(ctx *fiber.Ctx) error
}

type conversationController struct {
	conversationService service.IConversationService
	hub                 *internalWS.Hub
	jwtSecret           string
	logger              logger.ILogger
}

func NewConversationController(conversationService service.IConversationService, hub *internalWS.Hub, jwtSecret string, log logger.ILogger) IConversationController {
	return &conversationController{
		conversationService: conversationService,
		hub:                 hub,
		jwtSecret:           jwtSecret,
		logger:              log,
	}
}

func (c *conversationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/widget/v1")
	h.Post("session", c.StartSession)
	h.Get("ws", c.ServeWs)

	protected := h.Group("", serverutils.SessionMiddleware(c.jwtSecret))
	protected.Post("message", c.SendMessage)
	protected.Post("option", c.SelectOption)
	protected.Get("transcript", c.GetTranscript)
}

func (c *conversationController) StartSession(ctx *fiber.Ctx) error {
	res, err := c.conversationService.StartSession(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Session created", res))
}

func (c *conversationController) SendMessage(ctx *fiber.Ctx) error {
	sessionID := ctx.Locals("session_id").(string)

	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.conversationService.SendMessage(ctx.Context(), sessionID, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Message handled", res))
}

func (c *conversationController) SelectOption(ctx *fiber.Ctx) error {
	sessionID := ctx.Locals("session_id").(string)

	var req dto.SelectOptionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.conversationService.SelectOption(ctx.Context(), sessionID, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Option handled", res))
}

func (c *conversationController) GetTranscript(ctx *fiber.Ctx) error {
	sessionID := ctx.Locals("session_id").(string)

	res, err := c.conversationService.GetTranscript(ctx.Context(), sessionID)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Transcript", res))
}

// ServeWs upgrades a widget connection after validating the session token.
// Browsers can't set headers on WebSocket handshakes, so the token rides the
// query string.
func (c *conversationController) ServeWs(ctx *fiber.Ctx) error {
	tokenStr := ctx.Query("token")
	if tokenStr == "" {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}
	if tokenStr == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing token (Query 'token' or Header 'Authorization')"})
	}

	sessionID, err := serverutils.ParseSessionToken(c.jwtSecret, tokenStr)
	if err != nil {
		c.logger.Warn("ConversationController", "Invalid token in WS handshake", map[string]interface{}{"error": err.Error()})
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	if websocket.IsWebSocketUpgrade(ctx) {
		return websocket.New(func(conn *websocket.Conn) {
			c.logger.Info("ConversationController", "Starting WebSocket session", map[string]interface{}{"session_id": sessionID})
			internalWS.ServeWs(c.hub, conn, sessionID)
			c.logger.Info("ConversationController", "WebSocket session ended", map[string]interface{}{"session_id": sessionID})
		})(ctx)
	}
	return fiber.ErrUpgradeRequired
}
