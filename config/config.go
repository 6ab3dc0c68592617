package config

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"ecom-ledger/models"
)

var DB *gorm.DB

func ConnectDatabase() {
	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
	)

	// TranslateError maps driver duplicate-key errors to gorm.ErrDuplicatedKey,
	// which the order number retry loop depends on.
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect database: ", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Dealer{},
		&models.Order{},
		&models.OrderItem{},
		&models.Invoice{},
		&models.Payment{},
		&models.Check{},
		&models.Setting{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	DB = db
}
