// Package database - Index bổ sung cho catalog (unique keys, compound) không thể định nghĩa qua model tags.
package database

import (
	"context"
	"strings"

	"moa_commerce/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateCatalogIndexes tạo các index cho các collection catalog.
// Gọi một lần khi khởi động server, các index đã tồn tại sẽ được bỏ qua.
func CreateCatalogIndexes(ctx context.Context, db *mongo.Database) error {
	// products: productId unique: khóa ngoài dùng cho upsert CSV
	products := db.Collection(global.MongoDB_ColNames.Products)
	if _, err := products.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "productId", Value: 1}},
		Options: options.Index().SetName("product_product_id").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// products: (updatedAt, createdAt): sort theo recency
	if _, err := products.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "updatedAt", Value: -1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("product_recency"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// products: tags multikey: lọc theo tag
	if _, err := products.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "tags", Value: 1}},
		Options: options.Index().SetName("product_tags"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// products: (categoryL1, categoryL2): lọc theo danh mục
	if _, err := products.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "categoryL1", Value: 1},
			{Key: "categoryL2", Value: 1},
		},
		Options: options.Index().SetName("product_category"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// categories: key unique: từ điển danh mục
	categories := db.Collection(global.MongoDB_ColNames.Categories)
	if _, err := categories.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "key", Value: 1}},
		Options: options.Index().SetName("category_key").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// saved_items: (userId, productId) unique: một user chỉ lưu một sản phẩm một lần
	savedItems := db.Collection(global.MongoDB_ColNames.SavedItems)
	if _, err := savedItems.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "productId", Value: 1},
		},
		Options: options.Index().SetName("saved_item_user_product").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// orders: (userId, orderDate): danh sách đơn hàng theo ngày
	orders := db.Collection(global.MongoDB_ColNames.Orders)
	if _, err := orders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "orderDate", Value: -1},
		},
		Options: options.Index().SetName("order_user_date"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// users: firebaseUid unique sparse: ánh xạ tài khoản Firebase
	users := db.Collection(global.MongoDB_ColNames.Users)
	if _, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "firebaseUid", Value: 1}},
		Options: options.Index().SetName("user_firebase_uid").SetUnique(true).SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
