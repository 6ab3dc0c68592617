package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"ecom-ledger/dtos"
	"ecom-ledger/models"
	"ecom-ledger/utils"
)

// orderNumberAttempts bounds the retry loop on order number collisions.
const orderNumberAttempts = 3

// swapped out in tests to force number collisions
var generateOrderNumber = utils.GenerateOrderNumber

type OrderListFilter struct {
	Channel  string
	DealerID *uint
	Page     int
	Limit    int
}

type OrderService interface {
	Create(input dtos.CreateOrderInput) (*models.Order, error)
	GetByID(id uint, withItems bool) (*models.Order, error)
	GetByNumber(orderNumber string, withItems bool) (*models.Order, error)
	List(filter OrderListFilter) ([]models.Order, int64, error)
	UpdateStatus(id uint, status string) (*models.Order, error)
	BulkDelete(ids []uint) (int64, error)
}

type orderService struct {
	db       *gorm.DB
	settings SettingsService
}

func NewOrderService(db *gorm.DB) OrderService {
	return &orderService{db: db, settings: NewSettingsService(db)}
}

// Create validates, prices and persists an order with its items as one
// transaction. Nothing is written when validation fails; a generated
// order number that collides with an existing one is retried with a
// fresh number a bounded number of times.
func (s *orderService) Create(input dtos.CreateOrderInput) (*models.Order, error) {
	if len(input.Items) == 0 {
		return nil, models.ErrEmptyOrder
	}

	lineItems := make([]utils.LineItem, 0, len(input.Items))
	for _, item := range input.Items {
		if item.Quantity <= 0 || item.UnitPrice.IsNegative() {
			return nil, models.ErrInvalidAmount
		}
		lineItems = append(lineItems, utils.LineItem{
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	federal, provincial := s.settings.TaxRates()
	totals, err := utils.CalculateTotals(lineItems, input.Discount, input.Shipping, federal, provincial)
	if err != nil {
		return nil, err
	}

	currency := input.Currency
	if currency == "" {
		currency = "CAD"
	}

	var created *models.Order
	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		// rebuilt per attempt: a rolled-back insert leaves primary keys
		// populated on the item structs
		orderItems := make([]models.OrderItem, 0, len(input.Items))
		for _, item := range input.Items {
			lineTotal := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)
			orderItems = append(orderItems, models.OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.UnitPrice,
				Total:     lineTotal,
				SKU:       item.SKU,
			})
		}

		order := models.Order{
			OrderNumber: generateOrderNumber(input.Channel),
			Status:      models.OrderStatusPending,
			Subtotal:    totals.Subtotal,
			Tax:         totals.Tax,
			Shipping:    totals.Shipping,
			Discount:    totals.Discount,
			Total:       totals.Total,
			Currency:    currency,
			UserID:      input.UserID,
			DealerID:    input.DealerID,
			Items:       orderItems,
		}

		err = s.db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&order).Error
		})
		if err == nil {
			created = &order
			break
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		err = models.ErrDuplicateOrderNumber
	}
	if created == nil {
		return nil, err
	}

	return created, nil
}

func (s *orderService) GetByID(id uint, withItems bool) (*models.Order, error) {
	db := s.db
	if withItems {
		db = db.Preload("Items")
	}

	var order models.Order
	if err := db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (s *orderService) GetByNumber(orderNumber string, withItems bool) (*models.Order, error) {
	db := s.db
	if withItems {
		db = db.Preload("Items")
	}

	var order models.Order
	if err := db.Where("order_number = ?", orderNumber).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// List pages orders newest-first. The customer channel is everything
// without a reserved prefix; there is no channel column to filter on.
func (s *orderService) List(filter OrderListFilter) ([]models.Order, int64, error) {
	page := filter.Page
	limit := filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := s.db.Model(&models.Order{})

	switch filter.Channel {
	case utils.ChannelCustomer:
		db = db.Where("order_number NOT LIKE ?", utils.AdminSalePrefix+"%").
			Where("order_number NOT LIKE ?", utils.DealerSalePrefix+"%")
	case utils.ChannelAdmin:
		db = db.Where("order_number LIKE ?", utils.AdminSalePrefix+"%")
	case utils.ChannelDealer:
		db = db.Where("order_number LIKE ?", utils.DealerSalePrefix+"%")
	}

	if filter.DealerID != nil {
		db = db.Where("dealer_id = ?", *filter.DealerID)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	if err := db.Preload("Items").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&orders).Error; err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (s *orderService) UpdateStatus(id uint, status string) (*models.Order, error) {
	order, err := s.GetByID(id, false)
	if err != nil {
		return nil, err
	}

	order.Status = status
	if err := s.db.Save(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// BulkDelete removes orders and cascades their items. Admin-only;
// normal flows never delete financial records.
func (s *orderService) BulkDelete(ids []uint) (int64, error) {
	var deleted int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id IN ?", ids).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		res := tx.Where("id IN ?", ids).Delete(&models.Order{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})
	return deleted, err
}
