// Package router đăng ký các route thuộc domain order.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"moa_commerce/internal/api/middleware"
	orderhdl "moa_commerce/internal/api/order/handler"
	apirouter "moa_commerce/internal/api/router"
)

// Register đăng ký các route đơn hàng lên v1.
// Mọi route đều yêu cầu đăng nhập và chỉ thao tác trên đơn của chính người dùng.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	orderHandler, err := orderhdl.NewOrderHandler()
	if err != nil {
		return fmt.Errorf("failed to create order handler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware(false)
	apirouter.RegisterRouteWithMiddleware(v1, "/order", "POST", "/compose", []fiber.Handler{authMiddleware}, orderHandler.HandleCompose)
	apirouter.RegisterRouteWithMiddleware(v1, "/order", "POST", "/create", []fiber.Handler{authMiddleware}, orderHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(v1, "/order", "PUT", "/update-by-id/:id", []fiber.Handler{authMiddleware}, orderHandler.HandleUpdateById)
	apirouter.RegisterRouteWithMiddleware(v1, "/order", "GET", "/find", []fiber.Handler{authMiddleware}, orderHandler.HandleFind)
	apirouter.RegisterRouteWithMiddleware(v1, "/order", "GET", "/find-by-id/:id", []fiber.Handler{authMiddleware}, orderHandler.HandleFindById)
	apirouter.RegisterRouteWithMiddleware(v1, "/order", "DELETE", "/delete-by-id/:id", []fiber.Handler{authMiddleware}, orderHandler.HandleDeleteById)

	return nil
}
