package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ecom-ledger/config"
	"ecom-ledger/dtos"
	"ecom-ledger/models"
	"ecom-ledger/services"
)

func CreateDealer(c *gin.Context) {
	var input struct {
		Name  string  `json:"name" binding:"required"`
		Phone *string `json:"phone,omitempty"`
		Email *string `json:"email,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dealer, err := services.NewDealerService(config.DB).Create(input.Name, input.Phone, input.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dealer)
}

func GetDealers(c *gin.Context) {
	dealers, err := services.NewDealerService(config.DB).List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dealers)
}

func GetDealerByID(c *gin.Context) {
	id, err := parseDealerID(c)
	if err != nil {
		return
	}

	dealer, err := services.NewDealerService(config.DB).Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dealer)
}

// DELETE /dealers/:id — cascades the dealer's checks and payments
func DeleteDealer(c *gin.Context) {
	id, err := parseDealerID(c)
	if err != nil {
		return
	}

	if err := services.NewDealerService(config.DB).Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Dealer deleted"})
}

// GET /dealers/:id/balance — derived from payments, bankable checks and
// outstanding dealer-sale orders on every call
func GetDealerBalance(c *gin.Context) {
	id, err := parseDealerID(c)
	if err != nil {
		return
	}

	balance, err := services.NewSettlementService(config.DB).Balance(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"dealer_id": id,
		"balance":   balance,
	})
}

// POST /dealers/:id/payments
func RecordDealerPayment(c *gin.Context) {
	id, err := parseDealerID(c)
	if err != nil {
		return
	}

	var input dtos.RecordPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.DealerID = id

	payment, err := services.NewSettlementService(config.DB).RecordPayment(input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// GET /dealers/:id/payments
func GetDealerPayments(c *gin.Context) {
	id, err := parseDealerID(c)
	if err != nil {
		return
	}

	payments, err := services.NewSettlementService(config.DB).ListPayments(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, payments)
}

// POST /dealers/:id/checks
func CreateDealerCheck(c *gin.Context) {
	id, err := parseDealerID(c)
	if err != nil {
		return
	}

	var input dtos.CreateCheckInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.DealerID = id

	check, err := services.NewSettlementService(config.DB).CreateCheck(input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, check)
}

// GET /dealers/:id/checks?status=pending
func GetDealerChecks(c *gin.Context) {
	id, err := parseDealerID(c)
	if err != nil {
		return
	}

	var status *models.CheckStatus
	if statusStr := c.Query("status"); statusStr != "" {
		s := models.CheckStatus(statusStr)
		status = &s
	}

	checks, err := services.NewSettlementService(config.DB).ListChecks(id, status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, checks)
}

func parseDealerID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dealer id"})
		return 0, err
	}
	return uint(id), nil
}
