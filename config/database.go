package config

import (
	"context"
	"fmt"

	"github.com/yeremiapane/orders-admin/imageurl"
	"github.com/yeremiapane/orders-admin/store"
	"github.com/yeremiapane/orders-admin/utils"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the SQL database behind the gorm store.
func InitDB(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.StoreDriver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DatabaseDSN)
	case "mysql":
		dialector = mysql.Open(cfg.DatabaseDSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.StoreDriver)
	}

	gormCfg := &gorm.Config{}
	if cfg.GinMode == "release" {
		gormCfg.Logger = logger.Default.LogMode(logger.Silent)
	}
	return gorm.Open(dialector, gormCfg)
}

// NewOrderStore builds the store selected by STORE_DRIVER.
func NewOrderStore(cfg *Config) (store.OrderStore, error) {
	if cfg.StoreDriver == "sanity" {
		s := store.NewSanityStore(store.SanityConfig{
			ProjectID:  cfg.SanityProjectID,
			Dataset:    cfg.SanityDataset,
			Token:      cfg.SanityToken,
			APIVersion: cfg.SanityAPIVersion,
			BaseURL:    cfg.SanityBaseURL,
		})
		if err := s.ValidateConfig(); err != nil {
			return nil, err
		}
		return s, nil
	}

	db, err := InitDB(cfg)
	if err != nil {
		return nil, err
	}
	s := store.NewGormStore(db)
	if err := s.Migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")

	if cfg.SeedDemo {
		if err := seedDemo(s); err != nil {
			utils.ErrorLogger.Printf("Error seeding demo orders: %v", err)
		}
	}
	return s, nil
}

// NewImageResolver resolves product images for the configured store.
func NewImageResolver(cfg *Config) imageurl.Resolver {
	return imageurl.Sanity{
		ProjectID:      cfg.SanityProjectID,
		Dataset:        cfg.SanityDataset,
		UploadsBaseURL: cfg.UploadsBaseURL,
	}
}

func seedDemo(s *store.GormStore) error {
	var count int64
	if err := s.DB.Table("orders").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	utils.InfoLogger.Println("Seeding demo orders")
	return s.Seed(context.Background(), demoOrders)
}
