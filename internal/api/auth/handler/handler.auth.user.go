// Package authhdl xử lý các request xác thực và hồ sơ người dùng.
package authhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authdto "moa_commerce/internal/api/auth/dto"
	models "moa_commerce/internal/api/auth/models"
	authsvc "moa_commerce/internal/api/auth/service"
	basehdl "moa_commerce/internal/api/base/handler"
)

// UserHandler xử lý các request quản lý người dùng
type UserHandler struct {
	*basehdl.BaseHandler[models.User, authdto.UserUpdateProfileInput, authdto.UserUpdateProfileInput]
	userService *authsvc.UserService
}

// NewUserHandler tạo instance mới của UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.User, authdto.UserUpdateProfileInput, authdto.UserUpdateProfileInput](userService)
	return &UserHandler{
		BaseHandler: baseHandler,
		userService: userService,
	}, nil
}

// HandleGetProfile lấy thông tin hồ sơ của người dùng hiện tại
func (h *UserHandler) HandleGetProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := basehdl.CurrentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.FindOneById(c.Context(), objID)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleUpdateProfile cập nhật hồ sơ của người dùng hiện tại
func (h *UserHandler) HandleUpdateProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := basehdl.CurrentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input authdto.UserUpdateProfileInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.UpdateProfile(c.Context(), objID, &input)
		h.HandleResponse(c, user, err)
		return nil
	})
}
