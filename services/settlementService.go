package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"ecom-ledger/dtos"
	"ecom-ledger/models"
	"ecom-ledger/utils"
)

type SettlementService interface {
	RecordPayment(input dtos.RecordPaymentInput) (*models.Payment, error)
	CreateCheck(input dtos.CreateCheckInput) (*models.Check, error)
	GetCheck(id uint) (*models.Check, error)
	Transition(checkID uint, action models.CheckAction) (*models.Check, error)
	Balance(dealerID uint) (decimal.Decimal, error)
	ListChecks(dealerID uint, status *models.CheckStatus) ([]models.Check, error)
	ListPayments(dealerID uint) ([]models.Payment, error)
}

type settlementService struct {
	db *gorm.DB
}

func NewSettlementService(db *gorm.DB) SettlementService {
	return &settlementService{db: db}
}

func (s *settlementService) dealerExists(dealerID uint) error {
	var dealer models.Dealer
	if err := s.db.First(&dealer, dealerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}
	return nil
}

func (s *settlementService) RecordPayment(input dtos.RecordPaymentInput) (*models.Payment, error) {
	if !input.Amount.IsPositive() {
		return nil, models.ErrInvalidAmount
	}
	if err := s.dealerExists(input.DealerID); err != nil {
		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	payment := models.Payment{
		DealerID: input.DealerID,
		OrderID:  input.OrderID,
		Amount:   input.Amount.Round(2),
		Date:     date,
	}
	if err := s.db.Create(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

// CreateCheck records a postdated check. Pending is the only creation
// state; the due date may not precede the issue date.
func (s *settlementService) CreateCheck(input dtos.CreateCheckInput) (*models.Check, error) {
	if !input.Amount.IsPositive() {
		return nil, models.ErrInvalidAmount
	}
	if input.DueDate.Before(input.IssueDate) {
		return nil, models.ErrInvalidAmount
	}
	if err := s.dealerExists(input.DealerID); err != nil {
		return nil, err
	}

	check := models.Check{
		DealerID:    input.DealerID,
		Amount:      input.Amount.Round(2),
		CheckNumber: input.CheckNumber,
		BankName:    input.BankName,
		IssueDate:   input.IssueDate,
		DueDate:     input.DueDate,
		Status:      models.CheckStatusPending,
		Notes:       input.Notes,
	}
	if err := s.db.Create(&check).Error; err != nil {
		return nil, err
	}
	return &check, nil
}

func (s *settlementService) GetCheck(id uint) (*models.Check, error) {
	var check models.Check
	if err := s.db.First(&check, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &check, nil
}

// Transition applies a check status action under an optimistic check on
// both status and version. When two callers race on the same check the
// guarded update matches zero rows for the loser, whose precondition
// state is stale, and it gets ErrInvalidTransition instead of silently
// overwriting the winner.
func (s *settlementService) Transition(checkID uint, action models.CheckAction) (*models.Check, error) {
	check, err := s.GetCheck(checkID)
	if err != nil {
		return nil, err
	}

	next, ok := models.NextCheckStatus(check.Status, action)
	if !ok {
		return nil, models.ErrInvalidTransition
	}

	res := s.db.Model(&models.Check{}).
		Where("id = ? AND status = ? AND version = ?", check.ID, check.Status, check.Version).
		Updates(map[string]interface{}{
			"status":  next,
			"version": check.Version + 1,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, models.ErrInvalidTransition
	}

	check.Status = next
	check.Version++
	return check, nil
}

// Balance derives the dealer's running balance from source rows on every
// call: settled payments plus bankable checks, minus the totals of the
// dealer's dealer-sale orders. Never cached, so no update path can cause
// drift.
func (s *settlementService) Balance(dealerID uint) (decimal.Decimal, error) {
	if err := s.dealerExists(dealerID); err != nil {
		return decimal.Zero, err
	}

	var payments decimal.NullDecimal
	if err := s.db.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("dealer_id = ?", dealerID).
		Row().Scan(&payments); err != nil {
		return decimal.Zero, err
	}

	var checks decimal.NullDecimal
	if err := s.db.Model(&models.Check{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("dealer_id = ? AND status IN ?", dealerID,
			[]models.CheckStatus{models.CheckStatusDeposited, models.CheckStatusCleared}).
		Row().Scan(&checks); err != nil {
		return decimal.Zero, err
	}

	var owed decimal.NullDecimal
	if err := s.db.Model(&models.Order{}).
		Select("COALESCE(SUM(total), 0)").
		Where("dealer_id = ? AND order_number LIKE ?", dealerID, utils.DealerSalePrefix+"%").
		Row().Scan(&owed); err != nil {
		return decimal.Zero, err
	}

	balance := payments.Decimal.Add(checks.Decimal).Sub(owed.Decimal)
	return balance.Round(2), nil
}

func (s *settlementService) ListChecks(dealerID uint, status *models.CheckStatus) ([]models.Check, error) {
	db := s.db.Where("dealer_id = ?", dealerID)
	if status != nil {
		db = db.Where("status = ?", *status)
	}

	var checks []models.Check
	if err := db.Order("due_date, created_at").Find(&checks).Error; err != nil {
		return nil, err
	}
	return checks, nil
}

func (s *settlementService) ListPayments(dealerID uint) ([]models.Payment, error) {
	var payments []models.Payment
	if err := s.db.Where("dealer_id = ?", dealerID).
		Order("date DESC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
