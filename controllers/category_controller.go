package controllers

import (
	"net/http"

	"github.com/Rune905/Beauty-Bloom/services"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	categories CategoryAPI
	validator  *RequestValidator
}

func NewCategoryController(categories CategoryAPI) *CategoryController {
	return &CategoryController{categories: categories, validator: NewRequestValidator()}
}

// GetCategories handles GET /api/categories/read. Without parent_id it
// returns main categories only; with parent_id=N, the subcategories of N.
func (cc *CategoryController) GetCategories(c *gin.Context) {
	var parentID *uint
	if id, err := cc.validator.ParseID(c, "parent_id"); err == nil {
		parentID = &id
	}

	categories, svcErr := cc.categories.List(c.Request.Context(), parentID)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"message": svcErr.Message})
		return
	}
	if len(categories) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No categories found."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"records": categories,
		"total":   len(categories),
	})
}

// AdminList handles GET /api/admin/categories: the full tree, active or not.
func (cc *CategoryController) AdminList(c *gin.Context) {
	categories, svcErr := cc.categories.ListAll(c.Request.Context())
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"success": false, "message": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": categories})
}

// GetOne handles GET /api/admin/categories/read_one?id=N.
func (cc *CategoryController) GetOne(c *gin.Context) {
	id, err := cc.validator.ParseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Category ID is required"})
		return
	}

	category, svcErr := cc.categories.GetOne(c.Request.Context(), id)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"success": false, "message": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": category})
}

func (cc *CategoryController) Create(c *gin.Context) {
	var input services.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON body"})
		return
	}
	if err := cc.validator.Struct(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Category name is required"})
		return
	}

	category, svcErr := cc.categories.Create(c.Request.Context(), input)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"success": false, "message": svcErr.Message})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "Category created successfully",
		"category_id": category.ID,
	})
}

func (cc *CategoryController) Update(c *gin.Context) {
	id, err := cc.validator.ParseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Category ID is required"})
		return
	}

	var input services.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON body"})
		return
	}
	if err := cc.validator.Struct(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Category name is required"})
		return
	}

	if svcErr := cc.categories.Update(c.Request.Context(), id, input); svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"success": false, "message": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category updated successfully"})
}

func (cc *CategoryController) Delete(c *gin.Context) {
	id, err := cc.validator.ParseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Category ID is required"})
		return
	}

	if svcErr := cc.categories.Delete(c.Request.Context(), id); svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"success": false, "message": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category deleted successfully"})
}
