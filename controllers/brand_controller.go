package controllers

import (
	"net/http"
	"strings"

	"github.com/Rune905/Beauty-Bloom/models"
	"github.com/Rune905/Beauty-Bloom/services"

	"github.com/gin-gonic/gin"
)

type BrandController struct {
	brands    BrandAPI
	validator *RequestValidator
}

func NewBrandController(brands BrandAPI) *BrandController {
	return &BrandController{brands: brands, validator: NewRequestValidator()}
}

// GetBrands handles GET /api/brands/read. An optional s= term switches to
// a name search over active brands.
func (bc *BrandController) GetBrands(c *gin.Context) {
	var (
		brands []models.Brand
		svcErr *services.ServiceError
	)

	if term := strings.TrimSpace(c.Query("s")); term != "" {
		brands, svcErr = bc.brands.Search(c.Request.Context(), term)
	} else {
		brands, svcErr = bc.brands.List(c.Request.Context())
	}
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"message": svcErr.Message})
		return
	}

	if len(brands) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No brands found."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"records": brands,
		"total":   len(brands),
	})
}

// AdminList handles GET /api/admin/brands: all brands, active or not.
func (bc *BrandController) AdminList(c *gin.Context) {
	brands, svcErr := bc.brands.ListAll(c.Request.Context())
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"success": false, "message": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": brands})
}

func (bc *BrandController) Create(c *gin.Context) {
	var input services.BrandInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON body"})
		return
	}
	if err := bc.validator.Struct(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Brand name is required"})
		return
	}

	brand, svcErr := bc.brands.Create(c.Request.Context(), input)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"success": false, "message": svcErr.Message})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Brand created successfully",
		"brand_id": brand.ID,
	})
}

func (bc *BrandController) Update(c *gin.Context) {
	id, err := bc.validator.ParseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Brand ID is required"})
		return
	}

	var input services.BrandInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON body"})
		return
	}
	if err := bc.validator.Struct(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Brand name is required"})
		return
	}

	if svcErr := bc.brands.Update(c.Request.Context(), id, input); svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"success": false, "message": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Brand updated successfully"})
}

func (bc *BrandController) Delete(c *gin.Context) {
	id, err := bc.validator.ParseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Brand ID is required"})
		return
	}

	if svcErr := bc.brands.Delete(c.Request.Context(), id); svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"success": false, "message": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Brand deleted successfully"})
}
