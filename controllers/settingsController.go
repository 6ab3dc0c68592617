package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecom-ledger/config"
	"ecom-ledger/services"
)

// GET /settings
func GetSettings(c *gin.Context) {
	settings, err := services.NewSettingsService(config.DB).All()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// GET /settings/tax-rates — the rates the order calculator will apply
func GetTaxRates(c *gin.Context) {
	federal, provincial := services.NewSettingsService(config.DB).TaxRates()
	c.JSON(http.StatusOK, gin.H{
		"federal":    federal,
		"provincial": provincial,
	})
}

// PUT /settings
func UpdateSetting(c *gin.Context) {
	var input struct {
		Key   string `json:"key" binding:"required"`
		Value string `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.NewSettingsService(config.DB).Set(input.Key, input.Value); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Setting updated"})
}
