package config

import (
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DB is the shared gorm handle, set once at startup.
var DB *gorm.DB

func InitDB() {
	var err error
	DB, err = gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		Logger.Fatal("Error connecting to the database: " + err.Error())
	}
	Logger.Info("Database connected")
}
