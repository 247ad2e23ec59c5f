package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/catalog"
	chatControllers "github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/controllers/chat"
	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/session"
)

// SetupSocketRoutes registers the WebSocket endpoints. The chat socket
// authenticates by user_id query param so browser clients can connect
// without custom headers; the order feed is an internal dashboard stream.
func SetupSocketRoutes(r *gin.Engine, repo *catalog.Repository, sessions *session.Manager) {
	wsGroup := r.Group("/ws")
	{
		wsGroup.GET("/chat", chatControllers.ChatSocketHandler(sessions, repo))
		wsGroup.GET("/orders", chatControllers.OrderFeedHandler)
	}
}
