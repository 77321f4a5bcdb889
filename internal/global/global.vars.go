package global

import (
	"moa_commerce/config"
	"moa_commerce/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users      string // Tên collection cho người dùng
	Products   string // Tên collection cho sản phẩm
	Categories string // Tên collection cho từ điển danh mục
	SavedItems string // Tên collection cho sản phẩm đã lưu theo user
	Orders     string // Tên collection cho đơn hàng
}

// Các biến toàn cục
var Validate *validator.Validate                                              // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                             // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                                // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName = *new(MongoDB_CollectionName)    // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
