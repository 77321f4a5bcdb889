package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// SavedItem đánh dấu một sản phẩm được người dùng lưu lại.
// Sự tồn tại của document chính là trạng thái: có là đã lưu, không có là chưa.
// Unique index trên (userId, productId) chặn double-save khi race.
type SavedItem struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId" index:"single"`
	ProductID string             `json:"productId" bson:"productId"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
