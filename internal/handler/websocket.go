package handler

import (
	"log"

	"github.com/labstack/echo/v4"
	ws "github.com/zizouhuweidi/trivia/internal/websocket"
)

// WebSocketHandler streams question events over WebSocket connections
type WebSocketHandler struct {
	hub *ws.Hub
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(hub *ws.Hub) *WebSocketHandler {
	return &WebSocketHandler{
		hub: hub,
	}
}

// Register registers the WebSocket route
func (h *WebSocketHandler) Register(e *echo.Echo) {
	e.GET("/ws", h.HandleWebSocket)
}

// HandleWebSocket handles incoming WebSocket connections
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	// The upgrader has already answered the request when this fails
	if err := h.hub.ServeWS(c.Response(), c.Request()); err != nil {
		log.Printf("websocket: %v", err)
	}
	return nil
}
