package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ecom-ledger/models"
)

// respondError maps ledger errors onto HTTP statuses. Anything outside
// the taxonomy is a storage failure and comes back as a 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrEmptyOrder), errors.Is(err, models.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotFound), errors.Is(err, models.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrDuplicateOrderNumber), errors.Is(err, models.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
