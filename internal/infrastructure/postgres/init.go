package postgres

import (
	"log"

	"github.com/finovabank/banking-service/internal/config"
	"github.com/finovabank/banking-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.BankingConfig) *gorm.DB {
	dsn := cfg.BankingDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(&models.AccountModel{}, &models.TransactionModel{})

	return db
}
