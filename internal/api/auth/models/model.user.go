// Package models - model người dùng (User) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User là bản ghi phản chiếu của tài khoản Firebase trong MongoDB.
// FirebaseUID là khóa định danh, được đồng bộ lần đầu khi user gọi API với ID token hợp lệ.
// IsAdmin được gán theo cấu hình FIREBASE_ADMIN_UID khi đồng bộ.
type User struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	FirebaseUID   string             `json:"firebaseUid" bson:"firebaseUid" index:"unique"`
	Email         string             `json:"email,omitempty" bson:"email,omitempty" index:"unique,sparse"`
	Name          string             `json:"name" bson:"name"`
	AvatarURL     string             `json:"avatarUrl,omitempty" bson:"avatarUrl,omitempty"`
	EmailVerified bool               `json:"emailVerified" bson:"emailVerified"`
	IsAdmin       bool               `json:"isAdmin" bson:"isAdmin"`
	LastSeenAt    int64              `json:"lastSeenAt" bson:"lastSeenAt"`
	CreatedAt     int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt"`
}
