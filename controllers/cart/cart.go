package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/catalog"
	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/session"
)

type CartItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

// GET /user/cart
func GetUserCart(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		s := sessions.Get(userID)
		items := s.Cart()

		var total float64
		for _, p := range items {
			total += p.Price
		}

		c.JSON(http.StatusOK, gin.H{
			"items": items,
			"total": total,
		})
	}
}

// POST /user/cart
//
// Adding a product through this endpoint lands in the same cart the
// assistant reads, so a follow-up "checkout" message picks it up.
func AddCartItem(sessions *session.Manager, store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, ok := store.FindByID(input.ProductID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		s := sessions.Get(userID)
		result := s.AddToCart(product)

		c.JSON(http.StatusCreated, gin.H{
			"cart":     s.Cart(),
			"messages": result.Messages,
		})
	}
}
