package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"ecom-ledger/models"
)

// Defaults applied when a tax rate key is missing or unparseable.
const (
	DefaultFederalTaxRate    = "5"
	DefaultProvincialTaxRate = "8"
)

type SettingsService interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	All() ([]models.Setting, error)
	TaxRates() (federal, provincial decimal.Decimal)
}

type settingsService struct {
	db *gorm.DB
}

func NewSettingsService(db *gorm.DB) SettingsService {
	return &settingsService{db: db}
}

func (s *settingsService) Get(key string) (string, bool) {
	var setting models.Setting
	if err := s.db.Where("`key` = ?", key).First(&setting).Error; err != nil {
		return "", false
	}
	return setting.Value, true
}

func (s *settingsService) Set(key, value string) error {
	var setting models.Setting
	err := s.db.Where("`key` = ?", key).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.db.Create(&models.Setting{Key: key, Value: value}).Error
	}
	if err != nil {
		return err
	}

	setting.Value = value
	return s.db.Save(&setting).Error
}

func (s *settingsService) All() ([]models.Setting, error) {
	var settings []models.Setting
	if err := s.db.Order("`key`").Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

// TaxRates reads the federal and provincial percentages from settings,
// falling back to the defaults when a key is absent or not a number.
func (s *settingsService) TaxRates() (decimal.Decimal, decimal.Decimal) {
	return s.parseRate(models.SettingFederalTaxRate, DefaultFederalTaxRate),
		s.parseRate(models.SettingProvincialTaxRate, DefaultProvincialTaxRate)
}

func (s *settingsService) parseRate(key, fallback string) decimal.Decimal {
	value, ok := s.Get(key)
	if !ok {
		value = fallback
	}
	rate, err := decimal.NewFromString(value)
	if err != nil || rate.IsNegative() {
		rate, _ = decimal.NewFromString(fallback)
	}
	return rate
}
