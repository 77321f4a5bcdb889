package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"moa_commerce/config"
	"moa_commerce/internal/database"
	"moa_commerce/internal/global"
	"moa_commerce/internal/utility"
)

// InitGlobal khởi tạo các biến toàn cục theo thứ tự phụ thuộc:
// tên collection → validator → config → database → Firebase
func InitGlobal() {
	initColNames()
	initValidator()
	initConfig()
	initDatabase_MongoDB()
	initFirebase()
}

// initColNames khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Users = "auth_users"
	global.MongoDB_ColNames.Products = "catalog_products"
	global.MongoDB_ColNames.Categories = "catalog_categories"
	global.MongoDB_ColNames.SavedItems = "saved_items"
	global.MongoDB_ColNames.Orders = "orders"

	logrus.Info("Initialized collection names")
}

// initValidator khởi tạo validator và đăng ký các custom validator
// (no_xss, order_date, tag_token, sort_key)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// initConfig khởi tạo cấu hình server từ file env
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// initDatabase_MongoDB kết nối MongoDB và tạo các index
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	db := global.MongoDB_Session.Database(global.MongoDB_ServerConfig.MongoDB_DBName)
	if err := database.CreateCatalogIndexes(context.TODO(), db); err != nil {
		logrus.Fatalf("Failed to create catalog indexes: %v", err)
	}
	logrus.Info("Ensured catalog indexes")
}

// initFirebase khởi tạo Firebase Admin SDK để verify ID token.
// Thiếu config thì bỏ qua, các route yêu cầu đăng nhập sẽ từ chối request.
func initFirebase() {
	cfg := global.MongoDB_ServerConfig
	if cfg.FirebaseProjectID == "" || cfg.FirebaseCredentialsPath == "" {
		logrus.Warn("Firebase config không đầy đủ, bỏ qua khởi tạo Firebase")
		return
	}

	if err := utility.InitFirebase(cfg.FirebaseProjectID, cfg.FirebaseCredentialsPath); err != nil {
		logrus.Errorf("Failed to initialize Firebase: %v", err)
		return
	}

	logrus.Info("Firebase initialized successfully")
}
