// chat_web_socket.go
package chatControllers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/catalog"
	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/models"
	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/session"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	orderFeedMu      sync.Mutex
	orderFeedClients = make(map[*websocket.Conn]bool)
)

// wsFrame is one inbound chat-socket message. Type "message" is a typed
// turn, "voice" a recognized transcript (treated identically), and
// "voice_error" a recognition failure reported by the client.
type wsFrame struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// GET /ws/chat?user_id=...
// Streams every appended transcript message, including ones produced by
// deferred checkout steps, and accepts turns over the same socket.
func ChatSocketHandler(sessions *session.Manager, repo *catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		s := sessions.Get(userID)

		outbound := make(chan models.Message, 64)
		s.SetNotify(func(m models.Message) {
			select {
			case outbound <- m:
			default: // slow client, drop rather than stall the session
			}
		})
		defer s.SetNotify(nil)

		done := make(chan struct{})
		defer close(done)
		go func() {
			for {
				select {
				case m := <-outbound:
					if err := conn.WriteJSON(m); err != nil {
						return
					}
				case <-done:
					return
				}
			}
		}()

		for {
			var frame wsFrame
			if err := conn.ReadJSON(&frame); err != nil {
				break
			}
			switch frame.Type {
			case "message", "voice":
				res, err := s.HandleTurn(frame.Text)
				if err != nil {
					// Busy: last submission wins, this one is dropped.
					continue
				}
				recordOrder(repo, res.Order)
			case "voice_error":
				s.Notice("Error recognizing speech. Please try again.")
			}
		}
	}
}

// GET /ws/orders
// Admin dashboards subscribe here to see orders as they complete.
func OrderFeedHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	orderFeedMu.Lock()
	orderFeedClients[conn] = true
	orderFeedMu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			orderFeedMu.Lock()
			delete(orderFeedClients, conn)
			orderFeedMu.Unlock()
			break
		}
	}
}

func broadcastNewOrder(order models.Order) {
	orderFeedMu.Lock()
	defer orderFeedMu.Unlock()
	for client := range orderFeedClients {
		if err := client.WriteJSON(order); err != nil {
			client.Close()
			delete(orderFeedClients, client)
		}
	}
}
