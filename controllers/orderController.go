package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ecom-ledger/config"
	"ecom-ledger/dtos"
	"ecom-ledger/services"
	"ecom-ledger/utils"
)

// Create new order (customer / admin walk-in / dealer sale)
func CreateOrder(c *gin.Context) {
	var input dtos.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := services.NewOrderService(config.DB).Create(input)
	if err != nil {
		respondError(c, err)
		return
	}

	userID := utils.GetUserID(c)
	_ = utils.CreateOrderAuditLog(config.DB, "create", order.ID, nil, order,
		userID, c.ClientIP(), "Order created via "+utils.OrderChannel(order.OrderNumber)+" channel")

	c.JSON(http.StatusCreated, gin.H{"order": order})
}

// Get all orders with pagination and channel filter
func GetOrders(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", "10")

	page, _ := strconv.Atoi(pageStr)
	limit, _ := strconv.Atoi(limitStr)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	filter := services.OrderListFilter{
		Channel: c.Query("channel"),
		Page:    page,
		Limit:   limit,
	}

	if dealerStr := c.Query("dealer_id"); dealerStr != "" {
		if dealerID, err := strconv.ParseUint(dealerStr, 10, 32); err == nil {
			id := uint(dealerID)
			filter.DealerID = &id
		}
	}

	orders, total, err := services.NewOrderService(config.DB).List(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       orders,
		"page":       page,
		"limit":      limit,
		"total":      total,
		"totalPages": int((total + int64(limit) - 1) / int64(limit)),
	})
}

// Get order by ID
func GetOrderByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	order, err := services.NewOrderService(config.DB).GetByID(uint(id), true)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// Track order by number. Public by design so guests can follow their
// order without an account.
func TrackOrder(c *gin.Context) {
	orderNumber := c.Param("orderNumber")

	order, err := services.NewOrderService(config.DB).GetByNumber(orderNumber, true)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// Update order status
func UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewOrderService(config.DB)
	oldOrder, err := svc.GetByID(uint(id), false)
	if err != nil {
		respondError(c, err)
		return
	}

	order, err := svc.UpdateStatus(uint(id), input.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	userID := utils.GetUserID(c)
	_ = utils.CreateOrderAuditLog(config.DB, "update", order.ID, oldOrder, order,
		userID, c.ClientIP(), "Order status updated")

	c.JSON(http.StatusOK, order)
}

// DELETE /orders (admin bulk delete, cascades items)
func BulkDeleteOrders(c *gin.Context) {
	var input struct {
		IDs []uint `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deleted, err := services.NewOrderService(config.DB).BulkDelete(input.IDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
