package handler

import (
	"industrial-site-be/internal/pkg/apperror"
	"industrial-site-be/internal/pkg/logger"
	"industrial-site-be/internal/pkg/serverutils"
	"industrial-site-be/internal/service"
	internalWS "industrial-site-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// EditorHandler upgrades gated admin requests into editor websocket sessions.
type EditorHandler struct {
	hub       *internalWS.Hub
	presenter *service.Presenter
	logger    logger.ILogger
}

func NewEditorHandler(hub *internalWS.Hub, presenter *service.Presenter, log logger.ILogger) *EditorHandler {
	return &EditorHandler{
		hub:       hub,
		presenter: presenter,
		logger:    log,
	}
}

// RegisterRoutes expects r to sit behind the admin gate.
func (h *EditorHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/editor/ws", h.ServeWs)
}

// ServeWs handles websocket requests from the peer.
func (h *EditorHandler) ServeWs(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	userIDStr, _ := c.Locals(serverutils.LocalUserID).(string)
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return apperror.Unauthorized("Invalid user ID")
	}
	email, _ := c.Locals(serverutils.LocalEmail).(string)

	return websocket.New(func(conn *websocket.Conn) {
		h.logger.Info("EDITOR", "Starting editor session", map[string]interface{}{"user_id": userID, "email": email})
		internalWS.ServeWs(h.hub, conn, userID, email, h.presenter.HTML, h.logger)
		h.logger.Info("EDITOR", "Editor session ended", map[string]interface{}{"user_id": userID})
	})(c)
}
