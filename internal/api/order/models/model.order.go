package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// OrderItem là một dòng hàng trong đơn, snapshot tại thời điểm tạo/sửa đơn.
// Sửa sản phẩm gốc sau này không làm thay đổi đơn đã lưu.
type OrderItem struct {
	ProductID  string `json:"productId" bson:"productId"`
	Name       string `json:"name" bson:"name"`
	Price      int64  `json:"price" bson:"price"`
	Qty        int64  `json:"qty" bson:"qty"`
	Subtotal   int64  `json:"subtotal" bson:"subtotal"`
	CategoryL1 string `json:"categoryL1,omitempty" bson:"categoryL1,omitempty"`
	Link       string `json:"link,omitempty" bson:"link,omitempty"`
}

// Order là một đơn đặt hàng của người dùng
type Order struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID         primitive.ObjectID `json:"userId" bson:"userId" index:"single"`
	OrderName      string             `json:"orderName" bson:"orderName"`
	OrderDate      string             `json:"orderDate" bson:"orderDate"` // YYYY-MM-DD
	Items          []OrderItem        `json:"items" bson:"items"`
	TotalQty       int64              `json:"totalQty" bson:"totalQty"`
	TotalPrice     int64              `json:"totalPrice" bson:"totalPrice"`
	DiscountAmount int64              `json:"discountAmount" bson:"discountAmount"`
	FinalTotal     int64              `json:"finalTotal" bson:"finalTotal"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
