package services

import (
	"errors"

	"gorm.io/gorm"

	"ecom-ledger/models"
)

type DealerService interface {
	Create(name string, phone, email *string) (*models.Dealer, error)
	Get(id uint) (*models.Dealer, error)
	List() ([]models.Dealer, error)
	Delete(id uint) error
}

type dealerService struct {
	db *gorm.DB
}

func NewDealerService(db *gorm.DB) DealerService {
	return &dealerService{db: db}
}

func (s *dealerService) Create(name string, phone, email *string) (*models.Dealer, error) {
	dealer := models.Dealer{Name: name, Phone: phone, Email: email}
	if err := s.db.Create(&dealer).Error; err != nil {
		return nil, err
	}
	return &dealer, nil
}

func (s *dealerService) Get(id uint) (*models.Dealer, error) {
	var dealer models.Dealer
	if err := s.db.First(&dealer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &dealer, nil
}

func (s *dealerService) List() ([]models.Dealer, error) {
	var dealers []models.Dealer
	if err := s.db.Order("name").Find(&dealers).Error; err != nil {
		return nil, err
	}
	return dealers, nil
}

// Delete removes the dealer and cascades its checks and payments.
func (s *dealerService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("dealer_id = ?", id).Delete(&models.Check{}).Error; err != nil {
			return err
		}
		if err := tx.Where("dealer_id = ?", id).Delete(&models.Payment{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Dealer{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.ErrNotFound
		}
		return nil
	})
}
