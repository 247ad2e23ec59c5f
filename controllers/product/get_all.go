package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/catalog"
)

// GetProducts lists the catalog. Optional query params:
//   - q: full-text search (same matching as the assistant)
//   - category: filter by category id
func GetProducts(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if q := c.Query("q"); q != "" {
			c.JSON(http.StatusOK, gin.H{"products": store.Search(q)})
			return
		}
		if categoryID := c.Query("category"); categoryID != "" {
			c.JSON(http.StatusOK, gin.H{"products": store.ByCategory(categoryID)})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": store.Products()})
	}
}
