package utility

import (
	"encoding/json"
	"fmt"
)

// JSONToMap chuyển đổi chuỗi JSON thành map.
// Dùng để parse tham số filter dạng JSON từ query string.
func JSONToMap(jsonStr string) (map[string]interface{}, error) {
	var result map[string]interface{}
	err := json.Unmarshal([]byte(jsonStr), &result)
	if err != nil {
		return nil, fmt.Errorf("lỗi khi chuyển đổi JSON thành map: %v", err)
	}
	return result, nil
}
