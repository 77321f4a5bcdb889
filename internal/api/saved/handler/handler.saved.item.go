// Package savedhdl xử lý các request về tập sản phẩm đã lưu.
package savedhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "moa_commerce/internal/api/base/handler"
	saveddto "moa_commerce/internal/api/saved/dto"
	"moa_commerce/internal/api/saved/models"
	savedsvc "moa_commerce/internal/api/saved/service"
)

// SavedItemHandler xử lý toggle và liệt kê sản phẩm đã lưu
type SavedItemHandler struct {
	*basehdl.BaseHandler[models.SavedItem, saveddto.ToggleInput, saveddto.ToggleInput]
	savedService *savedsvc.SavedItemService
}

// NewSavedItemHandler tạo instance mới của SavedItemHandler
func NewSavedItemHandler() (*SavedItemHandler, error) {
	savedService, err := savedsvc.NewSavedItemService()
	if err != nil {
		return nil, fmt.Errorf("failed to create saved item service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.SavedItem, saveddto.ToggleInput, saveddto.ToggleInput](savedService)
	return &SavedItemHandler{
		BaseHandler:  baseHandler,
		savedService: savedService,
	}, nil
}

// Service trả về service bên dưới, cho các domain khác cần tra tập đã lưu
func (h *SavedItemHandler) Service() *savedsvc.SavedItemService {
	return h.savedService
}

// HandleToggle đảo trạng thái lưu của một sản phẩm, trả về trạng thái kết quả
func (h *SavedItemHandler) HandleToggle(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := basehdl.CurrentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input saveddto.ToggleInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.savedService.Toggle(c.Context(), userID, input.ProductID)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleListIDs trả về danh sách productId đã lưu của người dùng hiện tại
func (h *SavedItemHandler) HandleListIDs(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := basehdl.CurrentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		ids, err := h.savedService.ListIDs(c.Context(), userID)
		h.HandleResponse(c, ids, err)
		return nil
	})
}

// HandleListProducts trả về sản phẩm đã lưu dạng đầy đủ, theo thứ tự mới nhất
func (h *SavedItemHandler) HandleListProducts(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := basehdl.CurrentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		products, err := h.savedService.ListProducts(c.Context(), userID)
		h.HandleResponse(c, products, err)
		return nil
	})
}
