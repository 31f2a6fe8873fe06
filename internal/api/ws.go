package api

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/victornm/themequiz/internal/leaderboard"
)

const (
	wsWriteTimeout = 10 * time.Second
	wsSendBuffer   = 4
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// hub tracks the live leaderboard streams per quiz type.
type hub struct {
	mu      sync.Mutex
	clients map[string]map[*wsClient]struct{}
}

type wsClient struct {
	send chan []byte
}

func newHub() *hub {
	return &hub{clients: make(map[string]map[*wsClient]struct{})}
}

func (h *hub) subscribe(quizType string) *wsClient {
	c := &wsClient{send: make(chan []byte, wsSendBuffer)}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[quizType] == nil {
		h.clients[quizType] = make(map[*wsClient]struct{})
	}
	h.clients[quizType][c] = struct{}{}

	return c
}

func (h *hub) unsubscribe(quizType string, c *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.clients[quizType], c)
	if len(h.clients[quizType]) == 0 {
		delete(h.clients, quizType)
	}
}

// broadcast never blocks. A client that falls behind loses its oldest pending snapshot, which is
// stale anyway once a newer one exists.
func (h *hub) broadcast(quizType string, msg []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients[quizType] {
		for {
			select {
			case c.send <- msg:
			default:
				select {
				case <-c.send:
				default:
				}
				continue
			}
			break
		}
	}
}

func (h *hub) size(quizType string) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.clients[quizType])
}

// handleLeaderboardLive streams the leaderboard of a quiz type, starting with the current one.
func (a *API) handleLeaderboardLive(c *gin.Context) {
	ctx := c.Request.Context()
	quizType := c.Param("quizType")

	l, err := a.ls.GetLeaderboard(ctx, leaderboard.GetLeaderboardRequest{QuizType: quizType})
	if err != nil {
		writeError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.ErrorContext(ctx, "ws: upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	client := a.hub.subscribe(quizType)
	defer a.hub.unsubscribe(quizType, client)

	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	if err := conn.WriteJSON(Notification{Event: "leaderboard.snapshot", Data: newLeaderboard(*l, a.now())}); err != nil {
		return
	}

	// The stream is read only. Reading detects the client going away.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case msg := <-client.send:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				slog.InfoContext(ctx, "ws: write failed", "quiz", quizType, "error", err)
				return
			}
		case <-closed:
			return
		}
	}
}
