package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ecom-ledger/config"
	"ecom-ledger/dtos"
	"ecom-ledger/services"
)

// POST /orders/:id/invoice — snapshot the order into a new invoice.
// Regeneration is allowed and always creates a new invoice number.
func GenerateInvoice(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	var input dtos.CustomerSnapshotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	invoice, err := services.NewInvoiceService(config.DB).Generate(uint(orderID), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"invoice": invoice})
}

// Get all invoices with pagination
func GetInvoices(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	invoices, total, err := services.NewInvoiceService(config.DB).List(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	c.JSON(http.StatusOK, gin.H{
		"data":       invoices,
		"page":       page,
		"limit":      limit,
		"total":      total,
		"totalPages": int((total + int64(limit) - 1) / int64(limit)),
	})
}

// Get invoice by ID
func GetInvoiceByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invoice id"})
		return
	}

	invoice, err := services.NewInvoiceService(config.DB).GetByID(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// GET /orders/:id/invoices — full invoice history of one order
func GetOrderInvoices(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	invoices, err := services.NewInvoiceService(config.DB).ListByOrder(uint(orderID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, invoices)
}
