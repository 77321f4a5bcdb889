// Package router đăng ký các route thuộc domain catalog.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "moa_commerce/internal/api/catalog/handler"
	"moa_commerce/internal/api/middleware"
	apirouter "moa_commerce/internal/api/router"
)

// Register đăng ký các route catalog lên v1.
// Duyệt/lọc catalog là công khai (token chỉ dùng để bật trạng thái đã lưu),
// import/export và các thao tác hàng loạt dành cho admin.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	productHandler, err := cataloghdl.NewProductHandler()
	if err != nil {
		return fmt.Errorf("failed to create product handler: %w", err)
	}

	optionalAuth := middleware.OptionalAuthMiddleware()
	adminMiddleware := middleware.AuthMiddleware(true)

	// Lọc/tìm kiếm và từ điển phân loại
	apirouter.RegisterRouteWithMiddleware(v1, "/catalog", "POST", "/query", []fiber.Handler{optionalAuth}, productHandler.HandleQuery)
	apirouter.RegisterRouteWithMiddleware(v1, "/catalog", "GET", "/categories", []fiber.Handler{optionalAuth}, productHandler.HandleListCategories)
	apirouter.RegisterRouteWithMiddleware(v1, "/catalog", "GET", "/product/by-product-id/:productId", []fiber.Handler{optionalAuth}, productHandler.HandleFindByProductID)

	// Import/export CSV
	apirouter.RegisterRouteWithMiddleware(v1, "/catalog", "POST", "/import/preview", []fiber.Handler{adminMiddleware}, productHandler.HandlePreviewImport)
	apirouter.RegisterRouteWithMiddleware(v1, "/catalog", "POST", "/import", []fiber.Handler{adminMiddleware}, productHandler.HandleImport)
	apirouter.RegisterRouteWithMiddleware(v1, "/catalog", "GET", "/export", []fiber.Handler{adminMiddleware}, productHandler.HandleExport)
	apirouter.RegisterRouteWithMiddleware(v1, "/catalog", "GET", "/import/template", []fiber.Handler{adminMiddleware}, productHandler.HandleExportTemplate)

	// Thao tác hàng loạt
	apirouter.RegisterRouteWithMiddleware(v1, "/catalog", "POST", "/tags/add", []fiber.Handler{adminMiddleware}, productHandler.HandleAddTags)
	apirouter.RegisterRouteWithMiddleware(v1, "/catalog", "POST", "/tags/remove", []fiber.Handler{adminMiddleware}, productHandler.HandleRemoveTags)
	apirouter.RegisterRouteWithMiddleware(v1, "/catalog", "POST", "/category/assign", []fiber.Handler{adminMiddleware}, productHandler.HandleAssignCategory)
	apirouter.RegisterRouteWithMiddleware(v1, "/catalog", "DELETE", "/product/bulk", []fiber.Handler{adminMiddleware}, productHandler.HandleBulkDelete)

	// CRUD trực tiếp trên từng sản phẩm (đọc công khai qua /query, CRUD qua auth)
	r.RegisterCRUDRoutes(v1, "/product", productHandler, apirouter.AdminWriteConfig)

	return nil
}
