package utils

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"ecom-ledger/models"
)

func GetUserRole(c *gin.Context) string {
	role, _ := c.Get("role")
	if role == nil {
		return ""
	}
	return role.(string)
}

func GetUserID(c *gin.Context) *uint {
	if value, exists := c.Get("user_id"); exists {
		switch v := value.(type) {
		case uint:
			return &v
		case float64:
			id := uint(v)
			return &id
		}
	}
	return nil
}

func CreateOrderAuditLog(
	db *gorm.DB,
	action string,
	entityID uint,
	oldOrder, newOrder *models.Order,
	userID *uint,
	ipAddress string,
	description string,
) error {
	auditLog := models.AuditLog{
		EntityType:  "order",
		EntityID:    entityID,
		Action:      action,
		UserID:      userID,
		OldValue:    toJSONString(oldOrder),
		NewValue:    toJSONString(newOrder),
		Changes:     calculateOrderChanges(action, oldOrder, newOrder),
		IPAddress:   &ipAddress,
		Description: description,
	}

	return db.Create(&auditLog).Error
}

func CreateCheckAuditLog(
	db *gorm.DB,
	action string,
	entityID uint,
	oldCheck, newCheck *models.Check,
	userID *uint,
	ipAddress string,
	description string,
) error {
	auditLog := models.AuditLog{
		EntityType:  "check",
		EntityID:    entityID,
		Action:      action,
		UserID:      userID,
		OldValue:    toJSONString(oldCheck),
		NewValue:    toJSONString(newCheck),
		Changes:     calculateCheckChanges(action, oldCheck, newCheck),
		IPAddress:   &ipAddress,
		Description: description,
	}

	return db.Create(&auditLog).Error
}

func calculateOrderChanges(action string, oldOrder, newOrder *models.Order) *string {
	if action != "update" || oldOrder == nil || newOrder == nil {
		return nil
	}

	changes := make(map[string]interface{})

	if oldOrder.Status != newOrder.Status {
		changes["status"] = map[string]string{
			"old": oldOrder.Status,
			"new": newOrder.Status,
		}
	}

	if !oldOrder.Total.Equal(newOrder.Total) {
		changes["total"] = map[string]string{
			"old": oldOrder.Total.StringFixed(2),
			"new": newOrder.Total.StringFixed(2),
		}
	}

	if !oldOrder.Discount.Equal(newOrder.Discount) {
		changes["discount"] = map[string]string{
			"old": oldOrder.Discount.StringFixed(2),
			"new": newOrder.Discount.StringFixed(2),
		}
	}

	if len(changes) == 0 {
		return nil
	}

	return toJSONString(changes)
}

func calculateCheckChanges(action string, oldCheck, newCheck *models.Check) *string {
	if action != "update" || oldCheck == nil || newCheck == nil {
		return nil
	}

	changes := make(map[string]interface{})

	if oldCheck.Status != newCheck.Status {
		changes["status"] = map[string]string{
			"old": string(oldCheck.Status),
			"new": string(newCheck.Status),
		}
	}

	if getStringValue(oldCheck.Notes) != getStringValue(newCheck.Notes) {
		changes["notes"] = map[string]string{
			"old": getStringValue(oldCheck.Notes),
			"new": getStringValue(newCheck.Notes),
		}
	}

	if len(changes) == 0 {
		return nil
	}

	return toJSONString(changes)
}

func toJSONString(v interface{}) *string {
	if v == nil {
		return nil
	}
	bytes, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	str := string(bytes)
	return &str
}

func getStringValue(ptr *string) string {
	if ptr != nil {
		return *ptr
	}
	return ""
}
