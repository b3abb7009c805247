package server

import (
	"context"
	"encoding/json"
	"log"

	"gotolinks/internal/render"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// WebSocketPreviewHandler handles GET /api/ws/preview/:handle. The connection
// receives a rendered page snapshot immediately, then a fresh one every time
// an autosave or explicit save lands for that handle.
func (s *Server) WebSocketPreviewHandler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		ctx := context.Background()

		userIDVal := conn.Locals("userID")
		if userIDVal == nil {
			log.Printf("WebSocket Preview: Unauthenticated connection attempt")
			_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"unauthorized"}`))
			_ = conn.Close()
			return
		}

		handle := conn.Params("handle")
		profile, err := s.profileRepo.GetByHandle(ctx, handle)
		if err != nil {
			_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"unknown handle"}`))
			_ = conn.Close()
			return
		}

		client, ok := s.hub.Register(handle, conn)
		if !ok {
			_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"too many preview connections"}`))
			_ = conn.Close()
			return
		}

		// Initial snapshot so the preview is never blank while waiting for
		// the first save.
		if snapshot, err := json.Marshal(render.Profile(handle, profile)); err == nil {
			client.TrySend(snapshot)
		}

		go client.WritePump()
		client.ReadPump()
	})
}
