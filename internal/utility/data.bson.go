package utility

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// ToMap chuyển một struct model thành map[string]interface{} qua BSON marshal,
// giữ nguyên tên field theo bson tag. Dùng khi cần thêm/bớt field động
// (timestamps, partial update) trước khi ghi vào MongoDB.
func ToMap(data interface{}) (map[string]interface{}, error) {
	if m, ok := data.(map[string]interface{}); ok {
		return m, nil
	}

	raw, err := bson.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("lỗi khi marshal dữ liệu sang BSON: %w", err)
	}

	var result map[string]interface{}
	if err := bson.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("lỗi khi unmarshal BSON sang map: %w", err)
	}
	return result, nil
}
