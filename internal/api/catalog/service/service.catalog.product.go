package catalogsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	models "moa_commerce/internal/api/catalog/models"
	basesvc "moa_commerce/internal/api/base/service"
	"moa_commerce/internal/common"
	"moa_commerce/internal/global"
)

// ProductService là cấu trúc chứa các phương thức liên quan đến sản phẩm catalog
type ProductService struct {
	*basesvc.BaseServiceMongoImpl[models.Product]
}

// NewProductService tạo mới ProductService
func NewProductService() (*ProductService, error) {
	productCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}

	return &ProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Product](productCollection),
	}, nil
}

// FetchAll lấy toàn bộ sản phẩm cho filter engine.
// Engine làm việc trên mảng in-memory; catalog tối đa vài nghìn dòng.
func (s *ProductService) FetchAll(ctx context.Context) ([]models.Product, error) {
	return s.Find(ctx, bson.D{}, nil)
}

// FindByProductID lấy một sản phẩm theo productId
func (s *ProductService) FindByProductID(ctx context.Context, productID string) (*models.Product, error) {
	product, err := s.FindOne(ctx, bson.M{"productId": productID}, nil)
	if err != nil {
		return nil, err
	}
	return &product, nil
}
