package productcontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/catalog"
	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/models"
)

type ProductInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Category    string   `json:"category" binding:"required"`
	Image       string   `json:"image"`
	InStock     bool     `json:"inStock"`
	Tags        []string `json:"tags"`
}

// CreateProduct adds a catalog product. The store assigns a fresh unique id.
func CreateProduct(store *catalog.Store, repo *catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if _, ok := store.CategoryByID(input.Category); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
			return
		}

		product := store.Add(models.Product{
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			Category:    input.Category,
			Image:       input.Image,
			InStock:     input.InStock,
			Tags:        input.Tags,
		})

		persistCatalog(store, repo)
		c.JSON(http.StatusCreated, product)
	}
}

// persistCatalog writes the whole catalog through the repository. Updates are
// wholesale replace-and-persist, never partial writes.
func persistCatalog(store *catalog.Store, repo *catalog.Repository) {
	if repo == nil {
		return
	}
	if err := repo.ReplaceAll(store.Products()); err != nil {
		log.Printf("❌ Failed to persist catalog: %v", err)
	}
}
