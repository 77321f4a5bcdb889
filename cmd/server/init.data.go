package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	catalogsvc "moa_commerce/internal/api/catalog/service"
	"moa_commerce/internal/global"
)

// InitDefaultData nạp dữ liệu mặc định: từ điển phân loại hai cấp.
// Seed chạy khi từ điển còn trống, hoặc luôn chạy khi INITMODE bật
// (dùng để cập nhật lại nhãn sau khi sửa từ điển). Seed là upsert
// theo key nên chạy lại nhiều lần vô hại.
func InitDefaultData() {
	categoryService, err := catalogsvc.NewCategoryService()
	if err != nil {
		logrus.Fatalf("Failed to create category service: %v", err)
	}

	ctx := context.TODO()
	if !global.MongoDB_ServerConfig.InitMode {
		count, err := categoryService.CountDocuments(ctx, bson.M{})
		if err != nil {
			logrus.Fatalf("Failed to check category dictionary: %v", err)
		}
		if count > 0 {
			logrus.Info("Category dictionary already present, skipping seed")
			return
		}
	}

	if err := categoryService.Seed(ctx); err != nil {
		logrus.Fatalf("Failed to seed category dictionary: %v", err)
	}
	logrus.Info("Seeded category dictionary")
}
