package seeders

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"ecom-ledger/config"
	"ecom-ledger/models"
)

// helper for pointer string
func ptrString(s string) *string {
	return &s
}

func Seed() {
	// ============= Seed Users =============
	users := []struct {
		Username string
		Password string
		Role     string
	}{
		{Username: "admin", Password: "admin123", Role: "admin"},
		{Username: "cashier1", Password: "cashier123", Role: "cashier"},
	}

	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Println("Failed to hash seed password:", err)
			continue
		}
		user := models.User{Username: u.Username, Password: string(hash), Role: u.Role}
		config.DB.FirstOrCreate(&user, models.User{Username: u.Username})
	}

	// ============= Seed Settings =============
	settings := []models.Setting{
		{Key: models.SettingFederalTaxRate, Value: "5"},
		{Key: models.SettingProvincialTaxRate, Value: "8"},
		{Key: "contact_email", Value: "sales@example.com"},
		{Key: "contact_phone", Value: "+1 514 555 0100"},
	}

	for _, setting := range settings {
		config.DB.FirstOrCreate(&setting, models.Setting{Key: setting.Key})
	}

	// ============= Seed Products =============
	products := []models.Product{
		{Name: "Wireless Mouse", SKU: ptrString("WM-100"), Price: decimal.NewFromFloat(24.99)},
		{Name: "Mechanical Keyboard", SKU: ptrString("MK-210"), Price: decimal.NewFromFloat(89.50)},
		{Name: "USB-C Hub", SKU: ptrString("UH-330"), Price: decimal.NewFromFloat(45.00)},
		{Name: "27\" Monitor", SKU: ptrString("MN-270"), Price: decimal.NewFromFloat(229.00)},
		{Name: "Laptop Stand", SKU: ptrString("LS-115"), Price: decimal.NewFromFloat(32.75)},
	}

	for _, product := range products {
		config.DB.FirstOrCreate(&product, models.Product{Name: product.Name})
	}

	// ============= Seed Dealers =============
	dealers := []models.Dealer{
		{Name: "Northside Distribution", Phone: ptrString("+1 514 555 0142"), Email: ptrString("orders@northside.example")},
		{Name: "Lakeview Trading", Phone: ptrString("+1 438 555 0177")},
	}

	for _, dealer := range dealers {
		config.DB.FirstOrCreate(&dealer, models.Dealer{Name: dealer.Name})
	}

	fmt.Println("Seeding done: 2 users + 4 settings + 5 products + 2 dealers")
}
