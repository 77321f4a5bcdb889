package orderdto

// OrderLineInput là một dòng hàng client gửi lên khi tạo/sửa đơn
type OrderLineInput struct {
	ProductID string `json:"productId" validate:"required,max=100"`
	Qty       int64  `json:"qty" validate:"min=0,max=9999"`
}

// OrderCreateInput là payload tạo đơn từ các dòng đã soạn
type OrderCreateInput struct {
	OrderName string           `json:"orderName,omitempty" validate:"omitempty,max=200,no_xss"`
	OrderDate string           `json:"orderDate,omitempty" validate:"omitempty,order_date"`
	Lines     []OrderLineInput `json:"lines" validate:"required,min=1,dive"`
	Discount  int64            `json:"discount,omitempty" validate:"omitempty,min=0"`
}

// OrderUpdateInput là payload sửa đơn: tên, ngày, chiết khấu, số lượng dòng.
// Mọi trường đều tùy chọn, chỉ trường xuất hiện mới được ghi.
type OrderUpdateInput struct {
	OrderName *string          `json:"orderName,omitempty" validate:"omitempty,max=200,no_xss"`
	OrderDate *string          `json:"orderDate,omitempty" validate:"omitempty,order_date"`
	Discount  *int64           `json:"discount,omitempty" validate:"omitempty,min=0"`
	Lines     []OrderLineInput `json:"lines,omitempty" validate:"omitempty,min=1,dive"`
}

// ComposeInput là payload soạn nháp đơn từ tập sản phẩm đã lưu
type ComposeInput struct {
	DefaultQty int64 `json:"defaultQty,omitempty" validate:"omitempty,min=0,max=9999"`
}
