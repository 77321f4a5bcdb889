// Package router đăng ký các route thuộc domain auth.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "moa_commerce/internal/api/auth/handler"
	"moa_commerce/internal/api/middleware"
	apirouter "moa_commerce/internal/api/router"
)

// Register đăng ký các route auth (profile, quản lý user) lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware(false)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "GET", "/profile", []fiber.Handler{authMiddleware}, userHandler.HandleGetProfile)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "PUT", "/profile", []fiber.Handler{authMiddleware}, userHandler.HandleUpdateProfile)

	// Quản lý user chỉ dành cho admin đọc
	adminMiddleware := middleware.AuthMiddleware(true)
	apirouter.RegisterRouteWithMiddleware(v1, "/user", "GET", "/find", []fiber.Handler{adminMiddleware}, userHandler.Find)
	apirouter.RegisterRouteWithMiddleware(v1, "/user", "GET", "/find-with-pagination", []fiber.Handler{adminMiddleware}, userHandler.FindWithPagination)
	apirouter.RegisterRouteWithMiddleware(v1, "/user", "GET", "/count", []fiber.Handler{adminMiddleware}, userHandler.CountDocuments)

	return nil
}
