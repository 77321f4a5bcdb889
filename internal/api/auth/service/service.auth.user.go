// Package authsvc - service người dùng (User).
package authsvc

import (
	"context"
	"fmt"

	firebaseauth "firebase.google.com/go/v4/auth"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authdto "moa_commerce/internal/api/auth/dto"
	models "moa_commerce/internal/api/auth/models"
	basesvc "moa_commerce/internal/api/base/service"
	"moa_commerce/internal/common"
	"moa_commerce/internal/global"
	"moa_commerce/internal/utility"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// EnsureUser đồng bộ bản ghi user từ Firebase token đã verify.
// Tạo mới nếu chưa có, cập nhật lastSeenAt nếu đã có.
// IsAdmin được gán theo FIREBASE_ADMIN_UID trong cấu hình.
func (s *UserService) EnsureUser(ctx context.Context, token *firebaseauth.Token) (*models.User, error) {
	isAdmin := global.MongoDB_ServerConfig != nil &&
		global.MongoDB_ServerConfig.FirebaseAdminUID != "" &&
		global.MongoDB_ServerConfig.FirebaseAdminUID == token.UID

	now := utility.CurrentTimeInMilli()
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"lastSeenAt": now,
			"isAdmin":    isAdmin,
		},
		SetOnInsert: map[string]interface{}{
			"firebaseUid": token.UID,
		},
	}

	// Email và tên lấy từ claims của token, không cần gọi thêm Firebase
	if email, ok := token.Claims["email"].(string); ok && email != "" {
		updateData.Set["email"] = email
	}
	if name, ok := token.Claims["name"].(string); ok && name != "" {
		updateData.Set["name"] = name
	}
	if picture, ok := token.Claims["picture"].(string); ok && picture != "" {
		updateData.Set["avatarUrl"] = picture
	}
	if verified, ok := token.Claims["email_verified"].(bool); ok {
		updateData.Set["emailVerified"] = verified
	}

	user, err := s.Upsert(ctx, bson.M{"firebaseUid": token.UID}, updateData)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByFirebaseUID tìm user theo Firebase UID
func (s *UserService) FindByFirebaseUID(ctx context.Context, uid string) (*models.User, error) {
	user, err := s.FindOne(ctx, bson.M{"firebaseUid": uid}, nil)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile cập nhật hồ sơ người dùng (tên, ảnh đại diện)
func (s *UserService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, input *authdto.UserUpdateProfileInput) (*models.User, error) {
	set := make(map[string]interface{})
	if input.Name != "" {
		set["name"] = input.Name
	}
	if input.AvatarURL != "" {
		set["avatarUrl"] = input.AvatarURL
	}
	if len(set) == 0 {
		user, err := s.FindOneById(ctx, userID)
		if err != nil {
			return nil, err
		}
		return &user, nil
	}

	user, err := s.UpdateById(ctx, userID, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}
	return &user, nil
}
