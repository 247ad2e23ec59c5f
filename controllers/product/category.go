package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/catalog"
	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/models"
)

type categoryWithProducts struct {
	models.Category
	Products []models.Product `json:"products"`
}

// GetCategoriesWithProducts returns every category together with its products
// in catalog order. The category set is fixed; there is no category CRUD.
func GetCategoriesWithProducts(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories := store.Categories()
		out := make([]categoryWithProducts, 0, len(categories))
		for _, cat := range categories {
			out = append(out, categoryWithProducts{
				Category: cat,
				Products: store.ByCategory(cat.ID),
			})
		}
		c.JSON(http.StatusOK, gin.H{"categories": out})
	}
}
