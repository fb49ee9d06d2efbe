package configs

import (
	"dineboard/entity"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) {
	var dial gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dial = postgres.Open(cfg.DBSource)
	default:
		dial = sqlite.Open(cfg.DBSource)
	}
	database, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.MenuItem{},
		&entity.Table{},
		&entity.Chef{}, &entity.ChefAssignment{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderSequence{},
	)
}
