// Package models chứa các kiểu dùng chung cho layer repository/base.
package models

// PaginateResult đại diện cho kết quả phân trang của một truy vấn danh sách
type PaginateResult[T any] struct {
	Page      int64 `json:"page" bson:"page"`           // Trang hiện tại
	Limit     int64 `json:"limit" bson:"limit"`         // Số lượng mục trên mỗi trang
	ItemCount int64 `json:"itemCount" bson:"itemCount"` // Số lượng mục trong trang hiện tại
	Items     []T   `json:"items" bson:"items"`         // Danh sách các mục
	Total     int64 `json:"total" bson:"total"`         // Tổng số mục
	TotalPage int64 `json:"totalPage" bson:"totalPage"` // Tổng số trang
}

// BulkWriteResult tóm tắt kết quả một batch ghi dữ liệu
type BulkWriteResult struct {
	MatchedCount  int64 `json:"matchedCount"`  // Số document match filter
	ModifiedCount int64 `json:"modifiedCount"` // Số document bị sửa
	UpsertedCount int64 `json:"upsertedCount"` // Số document được tạo mới
}
