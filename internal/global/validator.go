package global

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// orderDatePattern kiểm tra định dạng ngày YYYY-MM-DD
	orderDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	// tagTokenPattern kiểm tra tag đã chuẩn hóa (chữ thường, không khoảng trắng)
	tagTokenPattern = regexp.MustCompile(`^\S+$`)
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("order_date", validateOrderDate)
	_ = Validate.RegisterValidation("tag_token", validateTagToken)
	_ = Validate.RegisterValidation("sort_key", validateSortKey)
}

// validateNoXSS kiểm tra XSS trong các trường text nhập từ người dùng
func validateNoXSS(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"eval(",
		"document.cookie",
		"document.write",
		"<iframe",
		"<object",
		"<embed",
	}

	value = strings.ToLower(value)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// validateOrderDate kiểm tra ngày đơn hàng theo định dạng YYYY-MM-DD
func validateOrderDate(fl validator.FieldLevel) bool {
	return orderDatePattern.MatchString(fl.Field().String())
}

// validateTagToken kiểm tra tag đã được chuẩn hóa (lowercase, không khoảng trắng)
func validateTagToken(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return false
	}
	if value != strings.ToLower(value) {
		return false
	}
	return tagTokenPattern.MatchString(value)
}

// validateSortKey kiểm tra khóa sắp xếp hợp lệ của trang danh mục
func validateSortKey(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "recency", "priceDesc", "priceAsc", "name":
		return true
	}
	return false
}
