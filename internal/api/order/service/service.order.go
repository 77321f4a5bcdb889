package ordersvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "moa_commerce/internal/api/base/service"
	catalogmodels "moa_commerce/internal/api/catalog/models"
	catalogsvc "moa_commerce/internal/api/catalog/service"
	"moa_commerce/internal/api/order/models"
	orderdto "moa_commerce/internal/api/order/dto"
	savedmodels "moa_commerce/internal/api/saved/models"
	"moa_commerce/internal/common"
	"moa_commerce/internal/global"
	"moa_commerce/internal/utility"
)

// Giới hạn số lượng trên một dòng hàng
const (
	MinLineQty = 0
	MaxLineQty = 9999
)

// productFetchChunkSize là số productId tối đa cho một lệnh $in
const productFetchChunkSize = 10

// OrderService quản lý đơn đặt hàng. Dòng hàng là snapshot tại thời điểm
// tạo/sửa đơn: giá và tên chụp từ sản phẩm hiện tại, về sau sản phẩm đổi
// thì đơn đã lưu không đổi theo.
type OrderService struct {
	*basesvc.BaseServiceMongoImpl[models.Order]
	productCRUD *basesvc.BaseServiceMongoImpl[catalogmodels.Product]
	savedCRUD   *basesvc.BaseServiceMongoImpl[savedmodels.SavedItem]
}

// NewOrderService tạo service mới cho đơn hàng
func NewOrderService() (*OrderService, error) {
	col, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Orders)
	if !exist {
		return nil, common.NewError(
			common.ErrCodeDatabaseConnection,
			"Không tìm thấy collection "+global.MongoDB_ColNames.Orders,
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
	savedCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.SavedItems)
	if !exist {
		return nil, common.NewError(
			common.ErrCodeDatabaseConnection,
			"Không tìm thấy collection "+global.MongoDB_ColNames.SavedItems,
			common.StatusInternalServerError,
			nil,
		)
	}
	return &OrderService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Order](col),
		productCRUD:          basesvc.NewBaseServiceMongo[catalogmodels.Product](productCol),
		savedCRUD:            basesvc.NewBaseServiceMongo[savedmodels.SavedItem](savedCol),
	}, nil
}

// ClampQty đưa số lượng về khoảng cho phép. Sản phẩm đang chờ nhập lại
// hàng thì luôn về 0, không bao giờ đặt được.
func ClampQty(qty int64, restockPending bool) int64 {
	if restockPending {
		return 0
	}
	if qty < MinLineQty {
		return MinLineQty
	}
	if qty > MaxLineQty {
		return MaxLineQty
	}
	return qty
}

// snapshotLine chụp một dòng hàng từ sản phẩm hiện tại
func snapshotLine(p catalogmodels.Product, qty int64) models.OrderItem {
	qty = ClampQty(qty, catalogsvc.IsRestockPending(&p))
	return models.OrderItem{
		ProductID:  p.ProductID,
		Name:       p.Name,
		Price:      p.Price,
		Qty:        qty,
		Subtotal:   p.Price * qty,
		CategoryL1: p.CategoryL1,
		Link:       p.Link,
	}
}

// sumTotals cộng lại tổng số lượng và tổng tiền từ các dòng hàng
func sumTotals(items []models.OrderItem) (totalQty int64, totalPrice int64) {
	for _, item := range items {
		totalQty += item.Qty
		totalPrice += item.Subtotal
	}
	return totalQty, totalPrice
}

// finalTotal tính tổng phải trả sau chiết khấu, không bao giờ âm
func finalTotal(totalPrice, discount int64) int64 {
	if discount < 0 {
		discount = 0
	}
	result := totalPrice - discount
	if result < 0 {
		return 0
	}
	return result
}

// fetchProductMap đọc các sản phẩm theo productId theo từng lô nhỏ
func (s *OrderService) fetchProductMap(ctx context.Context, ids []string) (map[string]catalogmodels.Product, error) {
	result := make(map[string]catalogmodels.Product, len(ids))
	for _, chunk := range utility.Chunk(utility.Unique(ids), productFetchChunkSize) {
		batch, err := s.productCRUD.Find(ctx, bson.M{"productId": bson.M{"$in": chunk}}, nil)
		if err != nil {
			return nil, err
		}
		for _, p := range batch {
			result[p.ProductID] = p
		}
	}
	return result, nil
}

// ComposeResult là bản nháp đơn dựng từ tập đã lưu, chưa ghi gì
type ComposeResult struct {
	Items      []models.OrderItem `json:"items"`
	TotalQty   int64              `json:"totalQty"`
	TotalPrice int64              `json:"totalPrice"`
}

// Compose dựng bản nháp đơn từ tập sản phẩm đã lưu của người dùng.
// Giá thiếu tính là 0, sản phẩm chờ nhập lại hàng bị ép số lượng 0.
func (s *OrderService) Compose(ctx context.Context, userID primitive.ObjectID, defaultQty int64) (*ComposeResult, error) {
	savedItems, err := s.savedCRUD.Find(ctx, bson.M{"userId": userID}, nil)
	if err != nil {
		return nil, err
	}
	if len(savedItems) == 0 {
		return &ComposeResult{Items: []models.OrderItem{}}, nil
	}

	ids := make([]string, 0, len(savedItems))
	for _, item := range savedItems {
		ids = append(ids, item.ProductID)
	}
	productMap, err := s.fetchProductMap(ctx, ids)
	if err != nil {
		return nil, err
	}

	if defaultQty == 0 {
		defaultQty = 1
	}

	items := make([]models.OrderItem, 0, len(ids))
	for _, id := range ids {
		p, found := productMap[id]
		if !found || p.Name == "" {
			continue
		}
		items = append(items, snapshotLine(p, defaultQty))
	}

	totalQty, totalPrice := sumTotals(items)
	return &ComposeResult{Items: items, TotalQty: totalQty, TotalPrice: totalPrice}, nil
}

// Create tạo đơn mới từ các dòng client gửi lên. Tên đơn mặc định
// "주문 <timestamp>", ngày mặc định hôm nay.
func (s *OrderService) Create(ctx context.Context, userID primitive.ObjectID, input *orderdto.OrderCreateInput) (*models.Order, error) {
	if len(input.Lines) == 0 {
		return nil, common.ErrOrderEmpty
	}

	ids := make([]string, 0, len(input.Lines))
	for _, line := range input.Lines {
		ids = append(ids, line.ProductID)
	}
	productMap, err := s.fetchProductMap(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]models.OrderItem, 0, len(input.Lines))
	for _, line := range input.Lines {
		p, found := productMap[line.ProductID]
		if !found {
			return nil, common.NewError(
				common.ErrCodeBusinessOrder,
				"Sản phẩm không tồn tại: "+line.ProductID,
				common.StatusBadRequest,
				nil,
			)
		}
		items = append(items, snapshotLine(p, line.Qty))
	}

	now := time.Now()
	orderName := input.OrderName
	if orderName == "" {
		orderName = fmt.Sprintf("주문 %s", now.Format("2006-01-02 15:04"))
	}
	orderDate := input.OrderDate
	if orderDate == "" {
		orderDate = now.Format("2006-01-02")
	}

	totalQty, totalPrice := sumTotals(items)
	order := models.Order{
		UserID:         userID,
		OrderName:      orderName,
		OrderDate:      orderDate,
		Items:          items,
		TotalQty:       totalQty,
		TotalPrice:     totalPrice,
		DiscountAmount: input.Discount,
		FinalTotal:     finalTotal(totalPrice, input.Discount),
	}

	created, err := s.InsertOne(ctx, order)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ListByUser liệt kê đơn của một người dùng, mới nhất trước
func (s *OrderService) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Find(ctx, bson.M{"userId": userID}, opts)
}

// FindByUser lấy một đơn theo id trong phạm vi của người dùng
func (s *OrderService) FindByUser(ctx context.Context, userID primitive.ObjectID, orderID primitive.ObjectID) (models.Order, error) {
	return s.FindOne(ctx, bson.M{"_id": orderID, "userId": userID}, nil)
}

// DeleteByUser xóa một đơn theo id trong phạm vi của người dùng
func (s *OrderService) DeleteByUser(ctx context.Context, userID primitive.ObjectID, orderID primitive.ObjectID) error {
	return s.DeleteOne(ctx, bson.M{"_id": orderID, "userId": userID})
}

// Update sửa đơn thuộc về người dùng: tên, ngày, chiết khấu, số lượng dòng.
// Ngày được validate trước khi chạm database. Số lượng dòng mới áp lên
// snapshot giá đã lưu trong đơn, không đọc lại giá sản phẩm hiện tại.
func (s *OrderService) Update(ctx context.Context, userID primitive.ObjectID, orderID primitive.ObjectID, input *orderdto.OrderUpdateInput) (*models.Order, error) {
	order, err := s.FindOne(ctx, bson.M{"_id": orderID, "userId": userID}, nil)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if input.OrderName != nil {
		set["orderName"] = *input.OrderName
	}
	if input.OrderDate != nil {
		set["orderDate"] = *input.OrderDate
	}

	items := order.Items
	if len(input.Lines) > 0 {
		qtyByID := make(map[string]int64, len(input.Lines))
		for _, line := range input.Lines {
			qtyByID[line.ProductID] = line.Qty
		}
		updated := make([]models.OrderItem, len(items))
		for i, item := range items {
			if qty, found := qtyByID[item.ProductID]; found {
				item.Qty = ClampQty(qty, false)
				item.Subtotal = item.Price * item.Qty
			}
			updated[i] = item
		}
		items = updated
		set["items"] = items
	}

	discount := order.DiscountAmount
	if input.Discount != nil {
		discount = *input.Discount
		if discount < 0 {
			discount = 0
		}
		set["discountAmount"] = discount
	}

	totalQty, totalPrice := sumTotals(items)
	set["totalQty"] = totalQty
	set["totalPrice"] = totalPrice
	set["finalTotal"] = finalTotal(totalPrice, discount)

	result, err := s.UpdateOne(ctx, bson.M{"_id": orderID, "userId": userID}, bson.M{"$set": set}, nil)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
