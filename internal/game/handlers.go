package game

import (
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const maxNameLen = 16

// Handler owns the websocket ingress: it upgrades connections, waits
// for the lobby:join handshake, and hands players to the lobby.
type Handler struct {
	lobby    *Lobby
	upgrader websocket.Upgrader
}

func NewHandler(lobby *Lobby, allowedOrigins []string) *Handler {
	return &Handler{
		lobby: lobby,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if len(allowedOrigins) == 0 {
					return true
				}
				return slices.Contains(allowedOrigins, r.Header.Get("Origin"))
			},
		},
	}
}

func (h *Handler) Register(r *gin.Engine) {
	r.GET("/ws", h.ServeWS)
}

// ServeWS upgrades the connection and reads frames until a valid
// lobby:join arrives; everything sent before joining a room is dropped
// silently. Once joined, the player's pumps take over the connection.
func (h *Handler) ServeWS(ctx *gin.Context) {
	conn, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		log.Debug().Err(err).Str("ip", ctx.ClientIP()).Msg("ws upgrade failed")
		return
	}
	socket := NewWebsocketConnection(conn)

	for {
		data, err := socket.Read()
		if err != nil {
			socket.Close("")
			return
		}
		var env Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			log.Debug().Err(err).Msg("malformed frame before join")
			continue
		}
		if env.Event != EventJoin {
			log.Debug().Str("event", env.Event).Msg("event before join dropped")
			continue
		}
		var payload JoinPayload
		if err := json.Unmarshal(env.Data, &payload); err != nil || payload.Room == "" {
			log.Debug().Msg("malformed join payload")
			continue
		}

		player := NewPlayer(uuid.NewString(), cleanName(payload.Name), socket)
		err = h.lobby.Join(ctx.Request.Context(), payload.Room, player)
		if errors.Is(err, ErrRoomClosed) {
			// Raced a room teardown; the lobby will recreate on retry.
			err = h.lobby.Join(ctx.Request.Context(), payload.Room, player)
		}
		if err != nil {
			log.Debug().Err(err).Str("room", payload.Room).Msg("join failed")
			socket.Close("join failed")
			return
		}
		go player.ReadPump()
		go player.WritePump()
		return
	}
}

func cleanName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "player"
	}
	runes := []rune(name)
	if len(runes) > maxNameLen {
		runes = runes[:maxNameLen]
	}
	return string(runes)
}
