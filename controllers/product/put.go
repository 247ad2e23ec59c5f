package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/catalog"
	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/models"
)

type ProductUpdateInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Image       *string  `json:"image"`
	InStock     *bool    `json:"inStock"`
	Tags        []string `json:"tags"`
}

// UpdateProduct partially updates a product in place. The id never changes.
func UpdateProduct(store *catalog.Store, repo *catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var input ProductUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Price != nil && *input.Price <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be positive"})
			return
		}
		if input.Category != nil {
			if _, ok := store.CategoryByID(*input.Category); !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
				return
			}
		}

		updated := store.Update(id, func(p *models.Product) {
			if input.Name != nil {
				p.Name = *input.Name
			}
			if input.Description != nil {
				p.Description = *input.Description
			}
			if input.Price != nil {
				p.Price = *input.Price
			}
			if input.Category != nil {
				p.Category = *input.Category
			}
			if input.Image != nil {
				p.Image = *input.Image
			}
			if input.InStock != nil {
				p.InStock = *input.InStock
			}
			if input.Tags != nil {
				p.Tags = input.Tags
			}
		})
		if !updated {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		persistCatalog(store, repo)
		product, _ := store.FindByID(id)
		c.JSON(http.StatusOK, product)
	}
}
