package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/catalog"
)

func DeleteProduct(store *catalog.Store, repo *catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		if !store.Delete(id) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		persistCatalog(store, repo)
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
