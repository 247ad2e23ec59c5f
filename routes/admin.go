package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/catalog"
	productcontroller "github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/controllers/product"
	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/middleware"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires API‐Key middleware.
func SetupAdminRoutes(r *gin.Engine, store *catalog.Store, repo *catalog.Repository) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(store, repo))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(store, repo))
			productAdmin.GET("", productcontroller.GetProducts(store))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(store, repo))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(store))
		}

		// ─────────── Category Browsing ───────────
		adminGroup.GET("/categories", productcontroller.GetCategoriesWithProducts(store))
	}
}
