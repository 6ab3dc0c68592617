package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ecom-ledger/config"
	"ecom-ledger/models"
	"ecom-ledger/services"
	"ecom-ledger/utils"
)

// POST /checks/:id/deposit (pending -> deposited)
func DepositCheck(c *gin.Context) {
	transitionCheck(c, models.CheckActionDeposit, "Check deposited")
}

// POST /checks/:id/clear (deposited -> cleared)
func ClearCheck(c *gin.Context) {
	transitionCheck(c, models.CheckActionClear, "Check cleared")
}

// POST /checks/:id/bounce (pending|deposited -> bounced)
func BounceCheck(c *gin.Context) {
	transitionCheck(c, models.CheckActionBounce, "Check bounced")
}

// POST /checks/:id/cancel (pending -> cancelled)
func CancelCheck(c *gin.Context) {
	transitionCheck(c, models.CheckActionCancel, "Check cancelled")
}

// GET /checks/:id
func GetCheckByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid check id"})
		return
	}

	check, err := services.NewSettlementService(config.DB).GetCheck(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, check)
}

func transitionCheck(c *gin.Context, action models.CheckAction, description string) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid check id"})
		return
	}

	svc := services.NewSettlementService(config.DB)
	oldCheck, err := svc.GetCheck(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	check, err := svc.Transition(uint(id), action)
	if err != nil {
		respondError(c, err)
		return
	}

	userID := utils.GetUserID(c)
	_ = utils.CreateCheckAuditLog(config.DB, "update", check.ID, oldCheck, check,
		userID, c.ClientIP(), description)

	c.JSON(http.StatusOK, check)
}
