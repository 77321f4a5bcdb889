package cataloghdl

import (
	"github.com/gofiber/fiber/v3"

	catalogdto "moa_commerce/internal/api/catalog/dto"
)

// HandleAddTags gắn tag hàng loạt cho các sản phẩm được chọn
func (h *ProductHandler) HandleAddTags(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input catalogdto.TagBulkInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.productService.AddTags(c.Context(), input.ProductIDs, input.Tags)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleRemoveTags gỡ tag hàng loạt khỏi các sản phẩm được chọn
func (h *ProductHandler) HandleRemoveTags(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input catalogdto.TagBulkInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.productService.RemoveTags(c.Context(), input.ProductIDs, input.Tags)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleAssignCategory gán category L1/L2 cho các sản phẩm được chọn,
// nhãn phải có trong từ điển phân loại
func (h *ProductHandler) HandleAssignCategory(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input catalogdto.CategoryAssignInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.productService.AssignCategory(c.Context(), h.categoryService, input.ProductIDs, input.CategoryL1, input.CategoryL2)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleBulkDelete xóa hàng loạt các sản phẩm được chọn
func (h *ProductHandler) HandleBulkDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input catalogdto.BulkDeleteInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.productService.BulkDelete(c.Context(), input.ProductIDs)
		h.HandleResponse(c, result, err)
		return nil
	})
}
