package catalogdto

// TagBulkInput là payload gắn/gỡ tag hàng loạt.
// Tags nhận chuỗi thô (phân tách phẩy/khoảng trắng), server tự tokenize.
type TagBulkInput struct {
	ProductIDs []string `json:"productIds" validate:"required,min=1,dive,required"`
	Tags       string   `json:"tags" validate:"required,max=300,no_xss"`
}

// CategoryAssignInput là payload gán category cho nhiều sản phẩm.
// Nhãn là tiếng Hàn và phải có trong từ điển phân loại.
type CategoryAssignInput struct {
	ProductIDs []string `json:"productIds" validate:"required,min=1,dive,required"`
	CategoryL1 string   `json:"categoryL1" validate:"required,max=100"`
	CategoryL2 string   `json:"categoryL2,omitempty" validate:"omitempty,max=100"`
}

// BulkDeleteInput là payload xóa sản phẩm hàng loạt
type BulkDeleteInput struct {
	ProductIDs []string `json:"productIds" validate:"required,min=1,dive,required"`
}

// ProductCreateInput dùng cho CRUD trực tiếp một sản phẩm
type ProductCreateInput struct {
	ProductID   string   `json:"productId" validate:"required,max=100"`
	Name        string   `json:"name" validate:"required,max=300,no_xss"`
	NameEn      string   `json:"nameEn,omitempty" validate:"omitempty,max=300,no_xss"`
	ProductCode string   `json:"productCode,omitempty" validate:"omitempty,max=100"`
	Price       int64    `json:"price,omitempty" validate:"omitempty,min=0"`
	Rating      float64  `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
	ReviewCount int64    `json:"reviewCount,omitempty" validate:"omitempty,min=0"`
	Views       int64    `json:"views,omitempty" validate:"omitempty,min=0"`
	Stock       int64    `json:"stock,omitempty"`
	Tags        []string `json:"tags,omitempty" validate:"omitempty,dive,tag_token"`
	Link        string   `json:"link,omitempty" validate:"omitempty,url"`
	ImageUrl    string   `json:"imageUrl,omitempty" validate:"omitempty,url"`
	Restockable bool     `json:"restockable,omitempty"`
	Status      string   `json:"status,omitempty" validate:"omitempty,max=100"`
	CategoryL1  string   `json:"categoryL1,omitempty" validate:"omitempty,max=100"`
	CategoryL2  string   `json:"categoryL2,omitempty" validate:"omitempty,max=100"`
}

// ProductUpdateInput dùng cho cập nhật một sản phẩm, mọi trường tùy chọn
type ProductUpdateInput struct {
	Name        string   `json:"name,omitempty" validate:"omitempty,max=300,no_xss"`
	NameEn      string   `json:"nameEn,omitempty" validate:"omitempty,max=300,no_xss"`
	ProductCode string   `json:"productCode,omitempty" validate:"omitempty,max=100"`
	Price       int64    `json:"price,omitempty" validate:"omitempty,min=0"`
	Rating      float64  `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
	ReviewCount int64    `json:"reviewCount,omitempty" validate:"omitempty,min=0"`
	Views       int64    `json:"views,omitempty" validate:"omitempty,min=0"`
	Stock       int64    `json:"stock,omitempty"`
	Tags        []string `json:"tags,omitempty" validate:"omitempty,dive,tag_token"`
	Link        string   `json:"link,omitempty" validate:"omitempty,url"`
	ImageUrl    string   `json:"imageUrl,omitempty" validate:"omitempty,url"`
	Restockable bool     `json:"restockable,omitempty"`
	Status      string   `json:"status,omitempty" validate:"omitempty,max=100"`
	CategoryL1  string   `json:"categoryL1,omitempty" validate:"omitempty,max=100"`
	CategoryL2  string   `json:"categoryL2,omitempty" validate:"omitempty,max=100"`
}
