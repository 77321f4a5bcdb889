// Package orderhdl xử lý các request về đơn đặt hàng.
package orderhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "moa_commerce/internal/api/base/handler"
	"moa_commerce/internal/api/order/models"
	orderdto "moa_commerce/internal/api/order/dto"
	ordersvc "moa_commerce/internal/api/order/service"
	"moa_commerce/internal/common"
	"moa_commerce/internal/utility"
)

// OrderHandler xử lý các request về đơn hàng, luôn scope theo người dùng hiện tại
type OrderHandler struct {
	*basehdl.BaseHandler[models.Order, orderdto.OrderCreateInput, orderdto.OrderUpdateInput]
	orderService *ordersvc.OrderService
}

// NewOrderHandler tạo instance mới của OrderHandler
func NewOrderHandler() (*OrderHandler, error) {
	orderService, err := ordersvc.NewOrderService()
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Order, orderdto.OrderCreateInput, orderdto.OrderUpdateInput](orderService)
	return &OrderHandler{
		BaseHandler:  baseHandler,
		orderService: orderService,
	}, nil
}

// HandleCompose dựng bản nháp đơn từ tập sản phẩm đã lưu
func (h *OrderHandler) HandleCompose(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := basehdl.CurrentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input orderdto.ComposeInput
		if len(c.Body()) > 0 {
			if err := h.ParseRequestBody(c, &input); err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
			if err := h.ValidateInput(&input); err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
		}

		draft, err := h.orderService.Compose(c.Context(), userID, input.DefaultQty)
		h.HandleResponse(c, draft, err)
		return nil
	})
}

// HandleCreate tạo đơn mới từ các dòng đã soạn
func (h *OrderHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := basehdl.CurrentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input orderdto.OrderCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		order, err := h.orderService.Create(c.Context(), userID, &input)
		h.HandleResponse(c, order, err)
		return nil
	})
}

// HandleUpdateById sửa đơn theo id, chỉ đơn thuộc về người dùng hiện tại
func (h *OrderHandler) HandleUpdateById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := basehdl.CurrentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		orderID := utility.String2ObjectID(h.GetIDFromContext(c))
		if orderID.IsZero() {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID đơn hàng không hợp lệ", common.StatusBadRequest, nil))
			return nil
		}

		var input orderdto.OrderUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		order, err := h.orderService.Update(c.Context(), userID, orderID, &input)
		h.HandleResponse(c, order, err)
		return nil
	})
}

// HandleFind liệt kê đơn của người dùng hiện tại, mới nhất trước
func (h *OrderHandler) HandleFind(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := basehdl.CurrentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		orders, err := h.orderService.ListByUser(c.Context(), userID)
		h.HandleResponse(c, orders, err)
		return nil
	})
}

// HandleFindById lấy một đơn theo id, chỉ đơn thuộc về người dùng hiện tại
func (h *OrderHandler) HandleFindById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := basehdl.CurrentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		orderID := utility.String2ObjectID(h.GetIDFromContext(c))
		if orderID.IsZero() {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID đơn hàng không hợp lệ", common.StatusBadRequest, nil))
			return nil
		}

		order, err := h.orderService.FindByUser(c.Context(), userID, orderID)
		h.HandleResponse(c, order, err)
		return nil
	})
}

// HandleDeleteById xóa một đơn theo id, chỉ đơn thuộc về người dùng hiện tại
func (h *OrderHandler) HandleDeleteById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := basehdl.CurrentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		orderID := utility.String2ObjectID(h.GetIDFromContext(c))
		if orderID.IsZero() {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID đơn hàng không hợp lệ", common.StatusBadRequest, nil))
			return nil
		}

		err = h.orderService.DeleteByUser(c.Context(), userID, orderID)
		h.HandleResponse(c, nil, err)
		return nil
	})
}
