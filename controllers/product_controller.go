package controllers

import (
	"net/http"

	"github.com/Rune905/Beauty-Bloom/models"
	"github.com/Rune905/Beauty-Bloom/services"

	"github.com/gin-gonic/gin"
)

// Default page sizes per endpoint.
const (
	defaultListLimit     = 10
	defaultFeaturedLimit = 6
	defaultHotDealLimit  = 4
)

// ProductController serves the public catalog endpoints.
type ProductController struct {
	products  ProductAPI
	cache     *CacheManager
	validator *RequestValidator
}

func NewProductController(products ProductAPI, cache *CacheManager) *ProductController {
	return &ProductController{
		products:  products,
		cache:     cache,
		validator: NewRequestValidator(),
	}
}

// recordsEnvelope shapes rows into the {records, total} listing envelope.
// total is the row count of the current page, not the table; clients treat
// it as "rows returned".
func recordsEnvelope(rows []models.ProductRow) map[string]interface{} {
	records := make([]map[string]interface{}, 0, len(rows))
	for i := range rows {
		records = append(records, rows[i].Record())
	}
	return map[string]interface{}{
		"records": records,
		"total":   len(rows),
	}
}

// GetProducts handles GET /api/products/read. A search term takes precedence
// over a category filter; an empty result is a 404.
func (pc *ProductController) GetProducts(c *gin.Context) {
	// Search takes the same default page size as plain listing; only the
	// offset is ignored on that path.
	params := services.ListParams{Search: c.Query("search")}
	if params.Search != "" {
		params.Limit, _ = pc.validator.ParseLimitOffset(c, defaultListLimit)
	} else {
		params.Limit, params.Offset = pc.validator.ParseLimitOffset(c, defaultListLimit)
	}
	if id, err := pc.validator.ParseID(c, "category_id"); err == nil {
		params.CategoryID = id
	}

	if cached, ok := pc.cache.GetProductList(c.Request.Context(), params); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	rows, svcErr := pc.products.List(c.Request.Context(), params)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"message": svcErr.Message})
		return
	}
	if len(rows) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No products found."})
		return
	}

	response := recordsEnvelope(rows)
	pc.cache.SetProductListAsync(params, response)
	c.JSON(http.StatusOK, response)
}

// GetFeatured handles GET /api/products/featured.
func (pc *ProductController) GetFeatured(c *gin.Context) {
	limit, _ := pc.validator.ParseLimitOffset(c, defaultFeaturedLimit)

	rows, svcErr := pc.products.Featured(c.Request.Context(), limit)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"message": svcErr.Message})
		return
	}
	if len(rows) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No products found."})
		return
	}

	c.JSON(http.StatusOK, recordsEnvelope(rows))
}

// GetHotDeals handles GET /api/products/hot_deals. Deals whose end date has
// passed never show up here.
func (pc *ProductController) GetHotDeals(c *gin.Context) {
	limit, _ := pc.validator.ParseLimitOffset(c, defaultHotDealLimit)

	rows, svcErr := pc.products.HotDeals(c.Request.Context(), limit)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"message": svcErr.Message})
		return
	}
	if len(rows) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No products found."})
		return
	}

	c.JSON(http.StatusOK, recordsEnvelope(rows))
}

// GetProduct handles GET /api/products/read_one?id=N. Inactive products are
// invisible to customers.
func (pc *ProductController) GetProduct(c *gin.Context) {
	id, err := pc.validator.ParseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if row, ok := pc.cache.GetProduct(c.Request.Context(), id); ok {
		c.JSON(http.StatusOK, row.Record())
		return
	}

	row, svcErr := pc.products.GetOne(c.Request.Context(), id)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"message": svcErr.Message})
		return
	}

	pc.cache.SetProductAsync(row)
	c.JSON(http.StatusOK, row.Record())
}
