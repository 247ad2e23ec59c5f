package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/catalog"
)

// GetProductByID returns a single product.
// URL param: /products/:id
func GetProductByID(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		product, ok := store.FindByID(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
