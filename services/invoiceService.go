package services

import (
	"errors"

	"gorm.io/gorm"

	"ecom-ledger/dtos"
	"ecom-ledger/models"
	"ecom-ledger/utils"
)

type InvoiceService interface {
	Generate(orderID uint, customer dtos.CustomerSnapshotInput) (*models.Invoice, error)
	GetByID(id uint) (*models.Invoice, error)
	GetByNumber(invoiceNumber string) (*models.Invoice, error)
	ListByOrder(orderID uint) ([]models.Invoice, error)
	List(page, limit int) ([]models.Invoice, int64, error)
}

type invoiceService struct {
	db *gorm.DB
}

func NewInvoiceService(db *gorm.DB) InvoiceService {
	return &invoiceService{db: db}
}

// Generate snapshots the order totals and the supplied customer/billing
// identity into a new invoice row. Invoices are append-only: calling this
// again for the same order produces a second invoice with a new number
// instead of editing the first.
func (s *invoiceService) Generate(orderID uint, customer dtos.CustomerSnapshotInput) (*models.Invoice, error) {
	var order models.Order
	if err := s.db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrOrderNotFound
		}
		return nil, err
	}

	var created *models.Invoice
	var err error
	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		invoice := models.Invoice{
			InvoiceNumber: utils.GenerateInvoiceNumber(),
			OrderID:       order.ID,
			Subtotal:      order.Subtotal,
			Tax:           order.Tax,
			Shipping:      order.Shipping,
			Discount:      order.Discount,
			Total:         order.Total,
			Currency:      order.Currency,
			CustomerName:  customer.CustomerName,
			CustomerPhone: customer.CustomerPhone,
			Address:       customer.Address,
			City:          customer.City,
			PostalCode:    customer.PostalCode,
			TaxNumber:     customer.TaxNumber,
		}

		err = s.db.Create(&invoice).Error
		if err == nil {
			created = &invoice
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

func (s *invoiceService) GetByID(id uint) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := s.db.First(&invoice, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

func (s *invoiceService) GetByNumber(invoiceNumber string) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := s.db.Where("invoice_number = ?", invoiceNumber).First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

func (s *invoiceService) ListByOrder(orderID uint) ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := s.db.Where("order_id = ?", orderID).
		Order("created_at DESC").
		Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

func (s *invoiceService) List(page, limit int) ([]models.Invoice, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	var total int64
	if err := s.db.Model(&models.Invoice{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var invoices []models.Invoice
	if err := s.db.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&invoices).Error; err != nil {
		return nil, 0, err
	}

	return invoices, total, nil
}
