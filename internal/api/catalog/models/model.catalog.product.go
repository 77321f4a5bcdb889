// Package models - các model thuộc domain catalog.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product là bản ghi sản phẩm trong catalog.
// ProductID là khóa ngoài ổn định (từ cột id hoặc productCode khi import),
// không thay đổi sau khi tạo. Giá vắng mặt hoặc không hợp lệ được lưu là 0.
type Product struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ProductID string             `json:"productId" bson:"productId" index:"unique"`

	Name        string `json:"name" bson:"name"`
	NameEn      string `json:"nameEn,omitempty" bson:"nameEn,omitempty"`
	ProductCode string `json:"productCode,omitempty" bson:"productCode,omitempty"`
	Link        string `json:"link,omitempty" bson:"link,omitempty"`
	ImageUrl    string `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Status      string `json:"status,omitempty" bson:"status,omitempty"`

	Price       int64   `json:"price" bson:"price"`
	Rating      float64 `json:"rating,omitempty" bson:"rating,omitempty"`
	ReviewCount int64   `json:"reviewCount,omitempty" bson:"reviewCount,omitempty"`
	Views       int64   `json:"views,omitempty" bson:"views,omitempty"`
	Stock       int64   `json:"stock,omitempty" bson:"stock,omitempty"`

	// Tags lưu dạng mảng nhưng ngữ nghĩa là set: token lowercase, không trùng lặp
	Tags []string `json:"tags" bson:"tags"`

	CategoryL1   string `json:"categoryL1,omitempty" bson:"categoryL1,omitempty"`
	CategoryL2   string `json:"categoryL2,omitempty" bson:"categoryL2,omitempty"`
	CategoryL1En string `json:"categoryL1En,omitempty" bson:"categoryL1En,omitempty"`
	CategoryL2En string `json:"categoryL2En,omitempty" bson:"categoryL2En,omitempty"`

	// Trạng thái "sắp nhập lại hàng": flag tường minh hoặc suy ra từ keyword
	// trong các trường text (xem service.catalog.filter.go)
	Restockable    bool     `json:"restockable,omitempty" bson:"restockable,omitempty"`
	RestockPending bool     `json:"restockPending,omitempty" bson:"restockPending,omitempty"`
	RestockSoon    bool     `json:"restockSoon,omitempty" bson:"restockSoon,omitempty"`
	Badges         []string `json:"badges,omitempty" bson:"badges,omitempty"`
	Labels         []string `json:"labels,omitempty" bson:"labels,omitempty"`
	NameBadge      string   `json:"nameBadge,omitempty" bson:"nameBadge,omitempty"`
	BadgeText      string   `json:"badgeText,omitempty" bson:"badgeText,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
