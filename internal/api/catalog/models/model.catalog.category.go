package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category định danh danh mục hai cấp, tách khỏi nhãn hiển thị.
// Key là khóa chuẩn (unique); ParentKey rỗng với danh mục cấp 1.
// LabelKo/LabelEn là phần trình bày, không tham gia quyết định "thuộc danh mục nào".
type Category struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Key       string             `json:"key" bson:"key" index:"unique"`
	ParentKey string             `json:"parentKey" bson:"parentKey"`
	LabelKo   string             `json:"labelKo" bson:"labelKo"`
	LabelEn   string             `json:"labelEn,omitempty" bson:"labelEn,omitempty"`
	SortOrder int64              `json:"sortOrder" bson:"sortOrder"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
