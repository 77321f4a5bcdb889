// Package router đăng ký các route thuộc domain saved.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"moa_commerce/internal/api/middleware"
	apirouter "moa_commerce/internal/api/router"
	savedhdl "moa_commerce/internal/api/saved/handler"
)

// Register đăng ký các route quản lý tập sản phẩm đã lưu lên v1.
// Mọi route đều yêu cầu đăng nhập vì tập đã lưu gắn với từng người dùng.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	savedHandler, err := savedhdl.NewSavedItemHandler()
	if err != nil {
		return fmt.Errorf("failed to create saved item handler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware(false)
	apirouter.RegisterRouteWithMiddleware(v1, "/saved", "POST", "/toggle", []fiber.Handler{authMiddleware}, savedHandler.HandleToggle)
	apirouter.RegisterRouteWithMiddleware(v1, "/saved", "GET", "/list", []fiber.Handler{authMiddleware}, savedHandler.HandleListIDs)
	apirouter.RegisterRouteWithMiddleware(v1, "/saved", "GET", "/products", []fiber.Handler{authMiddleware}, savedHandler.HandleListProducts)

	return nil
}
