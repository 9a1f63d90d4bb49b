package database

import (
	"LearnHub/config"
	"LearnHub/models"
	"LearnHub/pkg/log"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewDB opens the mysql connection used by every DAO
func NewDB(conf *config.Config) *gorm.DB {
	dsn := conf.MySQL.Dsn()
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.L.Error("failed to connect database", zap.Error(err))
	}

	if err := db.AutoMigrate(&models.User{}, &models.Course{}, &models.Note{}); err != nil {
		log.L.Error("auto migrate failed", zap.Error(err))
	}

	log.L.Info("connect database success")
	return db
}
