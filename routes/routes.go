package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/catalog"
	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/session"
)

// SetupRoutes is the single entry‐point that wires up Auth, User, Admin,
// and WebSocket route groups.
func SetupRoutes(r *gin.Engine, store *catalog.Store, repo *catalog.Repository, sessions *session.Manager) {
	// 1️⃣ Public Auth routes (no middleware)
	SetupAuthRoutes(r)

	// 2️⃣ User routes (JWT‐protected)
	SetupUserRoutes(r, store, repo, sessions)

	// 3️⃣ Admin routes (API‐Key‐protected)
	SetupAdminRoutes(r, store, repo)

	// websocket routes
	SetupSocketRoutes(r, repo, sessions)
}
