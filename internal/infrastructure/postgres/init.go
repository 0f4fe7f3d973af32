package postgres

import (
	"log"

	"github.com/nexabay/escrow-order-service/internal/config"
	"github.com/nexabay/escrow-order-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.EscrowConfig) *gorm.DB {
	dsn := cfg.OrderDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.ListingModel{},
		&models.OrderModel{},
		&models.TimelineEntryModel{},
		&models.DisputeModel{},
		&models.FavoriteModel{},
	)

	return db
}
