package controllers

import (
	"net/http"

	"github.com/Rune905/Beauty-Bloom/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultOrderLimit = 10

type OrderController struct {
	orders    OrderAPI
	validator *RequestValidator
}

func NewOrderController(orders OrderAPI) *OrderController {
	return &OrderController{orders: orders, validator: NewRequestValidator()}
}

type statusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

// GetUserOrders handles GET /api/orders for the authenticated user.
func (oc *OrderController) GetUserOrders(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	limit, offset := oc.validator.ParseLimitOffset(c, defaultOrderLimit)

	orders, total, svcErr := oc.orders.UserOrders(c.Request.Context(), userID, limit, offset)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"message": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    orders,
		"total":   total,
	})
}

// AdminList handles GET /api/admin/orders with per-order item counts and
// amounts for the management listing.
func (oc *OrderController) AdminList(c *gin.Context) {
	orders, svcErr := oc.orders.AdminList(c.Request.Context())
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"success": false, "message": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": orders})
}

// AdminDetails handles GET /api/admin/orders/:id: the order, its line items
// and the status history.
func (oc *OrderController) AdminDetails(c *gin.Context) {
	id, err := oc.validator.ParseParamID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Order ID is required"})
		return
	}

	details, svcErr := oc.orders.AdminDetails(c.Request.Context(), id)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"success": false, "message": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"order":   details.Order,
			"items":   details.Items,
			"history": details.History,
		},
	})
}

// UpdateStatus handles PUT /api/admin/orders/:id/status, recording the
// acting admin in the status history.
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, err := oc.validator.ParseParamID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Order ID is required"})
		return
	}

	adminID, err := middleware.GetAdminID(c)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Admin access required"})
		return
	}

	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Order status is required"})
		return
	}

	if svcErr := oc.orders.UpdateStatus(c.Request.Context(), id, req.Status, req.Note, adminID); svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"success": false, "message": svcErr.Message})
		return
	}

	zap.L().Info("order status updated",
		zap.Uint("order_id", id),
		zap.String("status", req.Status),
		zap.Uint("admin_id", adminID),
	)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order status updated successfully"})
}
