package savedsvc

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "moa_commerce/internal/api/base/service"
	catalogmodels "moa_commerce/internal/api/catalog/models"
	catalogsvc "moa_commerce/internal/api/catalog/service"
	"moa_commerce/internal/api/saved/models"
	"moa_commerce/internal/common"
	"moa_commerce/internal/global"
	"moa_commerce/internal/utility"
)

// productFetchChunkSize là số productId tối đa cho một lệnh $in khi
// resolve danh sách đã lưu thành sản phẩm đầy đủ
const productFetchChunkSize = 10

// SavedItemService quản lý tập sản phẩm đã lưu của từng người dùng.
// Đọc chéo sang collection sản phẩm qua một base service riêng,
// không phụ thuộc service của domain catalog.
type SavedItemService struct {
	*basesvc.BaseServiceMongoImpl[models.SavedItem]
	productCRUD *basesvc.BaseServiceMongoImpl[catalogmodels.Product]
}

// NewSavedItemService tạo service mới cho tập đã lưu
func NewSavedItemService() (*SavedItemService, error) {
	col, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.SavedItems)
	if !exist {
		return nil, common.NewError(
			common.ErrCodeDatabaseConnection,
			"Không tìm thấy collection "+global.MongoDB_ColNames.SavedItems,
			common.StatusInternalServerError,
			nil,
		)
	}
	productCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, common.NewError(
			common.ErrCodeDatabaseConnection,
			"Không tìm thấy collection "+global.MongoDB_ColNames.Products,
			common.StatusInternalServerError,
			nil,
		)
	}
	return &SavedItemService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.SavedItem](col),
		productCRUD:          basesvc.NewBaseServiceMongo[catalogmodels.Product](productCol),
	}, nil
}

// ToggleResult cho client biết trạng thái sau khi toggle để đối soát
// với optimistic UI phía client
type ToggleResult struct {
	ProductID string `json:"productId"`
	Saved     bool   `json:"saved"`
}

// Toggle đảo trạng thái lưu của (user, productId): đang lưu thì bỏ,
// chưa lưu thì thêm. Xóa trước; không xóa được gì nghĩa là chưa lưu
// nên chèn mới. Race chèn trùng bị unique index chặn và được coi là
// đã lưu thành công.
func (s *SavedItemService) Toggle(ctx context.Context, userID primitive.ObjectID, productID string) (*ToggleResult, error) {
	filter := bson.M{"userId": userID, "productId": productID}

	err := s.DeleteOne(ctx, filter)
	if err == nil {
		return &ToggleResult{ProductID: productID, Saved: false}, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	_, err = s.InsertOne(ctx, models.SavedItem{
		UserID:    userID,
		ProductID: productID,
	})
	if err != nil {
		if errors.Is(err, common.ErrMongoDuplicate) || errors.Is(err, common.ErrDuplicate) {
			return &ToggleResult{ProductID: productID, Saved: true}, nil
		}
		return nil, err
	}
	return &ToggleResult{ProductID: productID, Saved: true}, nil
}

// ListIDs trả về danh sách productId đã lưu của người dùng
func (s *SavedItemService) ListIDs(ctx context.Context, userID primitive.ObjectID) ([]string, error) {
	items, err := s.Find(ctx, bson.M{"userId": userID}, nil)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	return ids, nil
}

// IDSet trả về tập productId đã lưu dạng map tra cứu, dùng cho bộ lọc
// "chỉ xem đã lưu". Người dùng chưa đăng nhập truyền NilObjectID sẽ
// nhận nil (bộ lọc bị vô hiệu).
func (s *SavedItemService) IDSet(ctx context.Context, userID primitive.ObjectID) (map[string]bool, error) {
	if userID.IsZero() {
		return nil, nil
	}
	ids, err := s.ListIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

// ListProducts resolve tập đã lưu thành danh sách sản phẩm đầy đủ, đọc theo
// từng lô nhỏ và trả về theo thứ tự recency
func (s *SavedItemService) ListProducts(ctx context.Context, userID primitive.ObjectID) ([]catalogmodels.Product, error) {
	ids, err := s.ListIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []catalogmodels.Product{}, nil
	}

	products := make([]catalogmodels.Product, 0, len(ids))
	for _, chunk := range utility.Chunk(ids, productFetchChunkSize) {
		batch, err := s.productCRUD.Find(ctx, bson.M{"productId": bson.M{"$in": chunk}}, options.Find())
		if err != nil {
			return nil, err
		}
		products = append(products, batch...)
	}

	catalogsvc.SortProducts(products, catalogsvc.SortRecency)
	return products, nil
}
