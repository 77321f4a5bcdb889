package middleware

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	authmodels "moa_commerce/internal/api/auth/models"
	authsvc "moa_commerce/internal/api/auth/service"
	"moa_commerce/internal/common"
	"moa_commerce/internal/logger"
	"moa_commerce/internal/utility"
)

// AuthManager quản lý xác thực người dùng qua Firebase ID token
type AuthManager struct {
	UserCRUD *authsvc.UserService
	Cache    *utility.Cache // cache firebaseUid → user để giảm số lần đọc database
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		var err error
		authManagerInstance, err = newAuthManager()
		if err != nil {
			panic(err)
		}
	})
	return authManagerInstance
}

// newAuthManager khởi tạo một instance mới của AuthManager (private constructor)
func newAuthManager() (*AuthManager, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, err
	}

	return &AuthManager{
		UserCRUD: userService,
		Cache:    utility.NewCache(5*time.Minute, 10*time.Minute),
	}, nil
}

// resolveUser verify token và lấy bản ghi user tương ứng (từ cache hoặc database).
// Lần đầu user xuất hiện, bản ghi mirror được tạo từ các claim của token.
func (am *AuthManager) resolveUser(ctx context.Context, idToken string) (*authmodels.User, error) {
	token, err := utility.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, common.ErrTokenInvalid
	}

	cacheKey := "auth_user:" + token.UID
	if cached, found := am.Cache.Get(cacheKey); found {
		if user, ok := cached.(*authmodels.User); ok {
			return user, nil
		}
	}

	user, err := am.UserCRUD.EnsureUser(ctx, token)
	if err != nil {
		return nil, err
	}

	am.Cache.Set(cacheKey, user)
	return user, nil
}

// AuthMiddleware middleware xác thực cho Fiber.
// requireAdmin = true: chỉ cho phép user có quyền admin (bulk tag/category, import).
func AuthMiddleware(requireAdmin bool) fiber.Handler {
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("[AUTH] Missing Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		user, err := authManager.resolveUser(c.Context(), parts[1])
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("[AUTH] Token verification failed")
			HandleErrorResponse(c, err)
			return nil
		}

		if requireAdmin && !user.IsAdmin {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"firebase_uid": user.FirebaseUID,
				"path":         c.Path(),
			}).Warn("[AUTH] Non-admin user attempted admin operation")
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuth,
				"Chỉ quản trị viên mới được thực hiện thao tác này",
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		// Lưu thông tin user vào context cho các handler phía sau
		c.Locals("user_id", user.ID.Hex())
		c.Locals("firebase_uid", user.FirebaseUID)
		c.Locals("is_admin", user.IsAdmin)
		c.Locals("user", *user)

		return c.Next()
	}
}

// OptionalAuthMiddleware xác thực nếu request mang token, nhưng không chặn
// request vắng token. Dùng cho các route duyệt catalog công khai: trạng thái
// "đã lưu" chỉ có ý nghĩa khi người dùng đăng nhập.
func OptionalAuthMiddleware() fiber.Handler {
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Next()
		}

		user, err := authManager.resolveUser(c.Context(), parts[1])
		if err != nil {
			// Token hỏng trên route công khai: coi như khách vãng lai
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Debug("[AUTH] Optional token verification failed")
			return c.Next()
		}

		c.Locals("user_id", user.ID.Hex())
		c.Locals("firebase_uid", user.FirebaseUID)
		c.Locals("is_admin", user.IsAdmin)
		c.Locals("user", *user)

		return c.Next()
	}
}
