package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/catalog"
	cartControllers "github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/controllers/cart"
	chatControllers "github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/controllers/chat"
	productControllers "github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/controllers/product"
	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/middleware"
	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/session"
)

// SetupUserRoutes registers all “/user/*” endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, store *catalog.Store, repo *catalog.Repository, sessions *session.Manager) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Assistant Chat ────────────────
		chatGroup := userGroup.Group("/chat")
		{
			chatGroup.POST("/", chatControllers.PostMessage(sessions, repo))  // POST /user/chat
			chatGroup.GET("/", chatControllers.GetTranscript(sessions))       // GET /user/chat
			chatGroup.GET("/state", chatControllers.GetState(sessions))       // GET /user/chat/state
			chatGroup.DELETE("/", chatControllers.ResetSession(sessions))     // DELETE /user/chat
		}

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(sessions))         // GET /user/cart
			cartGroup.POST("/", cartControllers.AddCartItem(sessions, store)) // POST /user/cart
		}

		// ──────────────── Browse Products ────────────────
		userGroup.GET("/products", productControllers.GetProducts(store))        // GET /user/products
		userGroup.GET("/products/:id", productControllers.GetProductByID(store)) // GET /user/products/:id

		// ──────────────── Browse Categories + Products ────────────────
		userGroup.GET("/categories", productControllers.GetCategoriesWithProducts(store)) // GET /user/categories
	}
}
