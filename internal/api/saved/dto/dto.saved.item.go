package saveddto

// ToggleInput là payload đảo trạng thái lưu một sản phẩm
type ToggleInput struct {
	ProductID string `json:"productId" validate:"required,max=100"`
}
