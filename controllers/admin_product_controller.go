package controllers

import (
	"net/http"

	"github.com/Rune905/Beauty-Bloom/services"

	"github.com/gin-gonic/gin"
)

// AdminProductController serves the back-office product CRUD. PUT and DELETE
// take the product id as a query parameter, matching the admin client.
type AdminProductController struct {
	products  ProductAPI
	cache     *CacheManager
	validator *RequestValidator
}

func NewAdminProductController(products ProductAPI, cache *CacheManager) *AdminProductController {
	return &AdminProductController{
		products:  products,
		cache:     cache,
		validator: NewRequestValidator(),
	}
}

// List handles GET /api/admin/products: every product, active or not. An
// empty catalog is a 200 with an empty array.
func (ac *AdminProductController) List(c *gin.Context) {
	rows, svcErr := ac.products.ListAll(c.Request.Context())
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"success": false, "message": svcErr.Message})
		return
	}

	records := make([]map[string]interface{}, 0, len(rows))
	for i := range rows {
		records = append(records, rows[i].Record())
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": records})
}

// GetOne handles GET /api/admin/products/read_one?id=N without the is_active
// filter, so inactive products stay reachable from the back office.
func (ac *AdminProductController) GetOne(c *gin.Context) {
	id, err := ac.validator.ParseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	row, svcErr := ac.products.GetOneAdmin(c.Request.Context(), id)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"success": false, "message": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": row.Record()})
}

// Create handles POST /api/admin/products.
func (ac *AdminProductController) Create(c *gin.Context) {
	var input services.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON body"})
		return
	}
	if err := ac.validator.Struct(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Product name and price are required"})
		return
	}

	product, svcErr := ac.products.Create(c.Request.Context(), input)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"success": false, "message": svcErr.Message})
		return
	}

	ac.cache.InvalidateProduct(c.Request.Context(), product.ID)
	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"message":    "Product created successfully",
		"product_id": product.ID,
		"data":       product,
	})
}

// Update handles PUT /api/admin/products?id=N. The whole row is overwritten.
func (ac *AdminProductController) Update(c *gin.Context) {
	id, err := ac.validator.ParseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Product ID and name are required"})
		return
	}

	var input services.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON body"})
		return
	}
	if err := ac.validator.Struct(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Product ID and name are required"})
		return
	}

	if svcErr := ac.products.Update(c.Request.Context(), id, input); svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"success": false, "message": svcErr.Message})
		return
	}

	ac.cache.InvalidateProduct(c.Request.Context(), id)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product updated successfully"})
}

type setImageRequest struct {
	Image string `json:"image" validate:"required"`
}

// SetImage handles PUT /api/admin/products/image?id=N, pointing a product
// at a previously uploaded filename.
func (ac *AdminProductController) SetImage(c *gin.Context) {
	id, err := ac.validator.ParseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Product ID is required"})
		return
	}

	var req setImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON body"})
		return
	}
	if err := ac.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Image filename is required"})
		return
	}

	if svcErr := ac.products.SetImage(c.Request.Context(), id, req.Image); svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"success": false, "message": svcErr.Message})
		return
	}

	ac.cache.InvalidateProduct(c.Request.Context(), id)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product image updated successfully"})
}

// Delete handles DELETE /api/admin/products?id=N.
func (ac *AdminProductController) Delete(c *gin.Context) {
	id, err := ac.validator.ParseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Product ID is required"})
		return
	}

	if svcErr := ac.products.Delete(c.Request.Context(), id); svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"success": false, "message": svcErr.Message})
		return
	}

	ac.cache.InvalidateProduct(c.Request.Context(), id)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted successfully"})
}
