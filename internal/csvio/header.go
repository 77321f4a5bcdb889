package csvio

import (
	"regexp"
	"strings"
)

// Các canonical key của schema sản phẩm mà header CSV được ánh xạ về
const (
	KeyID           = "id"
	KeyName         = "name"
	KeyNameEn       = "name_en"
	KeyProductCode  = "productCode"
	KeyPrice        = "price"
	KeyRating       = "rating"
	KeyReviewCount  = "reviewCount"
	KeyViews        = "views"
	KeyTags         = "tags"
	KeyLink         = "link"
	KeyImageUrl     = "imageUrl"
	KeyRestockable  = "restockable"
	KeyStatus       = "status"
	KeyStock        = "stock"
	KeyCategoryL1   = "categoryL1"
	KeyCategoryL2   = "categoryL2"
	KeyCategoryL1En = "categoryL1_en"
	KeyCategoryL2En = "categoryL2_en"
)

var (
	// headerStripPattern loại bỏ khoảng trắng và underscore trong header
	headerStripPattern = regexp.MustCompile(`[\s_]+`)

	// headerParenPattern loại bỏ phần chú thích trong ngoặc, ví dụ "가격(원)" -> "가격"
	headerParenPattern = regexp.MustCompile(`\([^)]*\)`)
)

// headerSynonyms ánh xạ header đã chuẩn hóa (tiếng Hàn hoặc tiếng Anh)
// về canonical key. Một file có thể trộn lẫn header hai ngôn ngữ.
var headerSynonyms = map[string]string{
	"id":     KeyID,
	"상품id": KeyID,
	"문서id": KeyID,
	"productid": KeyID,

	"상품명":       KeyName,
	"name":        KeyName,
	"title":       KeyName,
	"productname": KeyName,

	"영문명":           KeyNameEn,
	"영어명":           KeyNameEn,
	"productnameen":  KeyNameEn,
	"nameen":         KeyNameEn,
	"productname_en": KeyNameEn,
	"name_en":        KeyNameEn,

	"상품코드":      KeyProductCode,
	"productcode": KeyProductCode,
	"code":        KeyProductCode,
	"pdno":        KeyProductCode,

	"가격":  KeyPrice,
	"price": KeyPrice,

	"평점":   KeyRating,
	"rating": KeyRating,

	"리뷰수":       KeyReviewCount,
	"review":      KeyReviewCount,
	"reviews":     KeyReviewCount,
	"reviewcount": KeyReviewCount,

	"조회수": KeyViews,
	"views":  KeyViews,
	"view":   KeyViews,

	"태그": KeyTags,
	"tags": KeyTags,

	"링크": KeyLink,
	"url":  KeyLink,
	"link": KeyLink,

	"이미지":      KeyImageUrl,
	"이미지url":   KeyImageUrl,
	"image":       KeyImageUrl,
	"imageurl":    KeyImageUrl,
	"thumbnail":   KeyImageUrl,

	"재입고":      KeyRestockable,
	"restock":     KeyRestockable,
	"restockable": KeyRestockable,

	"상태":   KeyStatus,
	"status": KeyStatus,

	"재고":      KeyStock,
	"stock":      KeyStock,
	"재고수량": KeyStock,

	"대분류":     KeyCategoryL1,
	"categoryl1": KeyCategoryL1,

	"중분류":     KeyCategoryL2,
	"categoryl2": KeyCategoryL2,

	"대분류en":       KeyCategoryL1En,
	"categoryl1en":   KeyCategoryL1En,
	"categoryl1_en":  KeyCategoryL1En,

	"중분류en":       KeyCategoryL2En,
	"categoryl2en":   KeyCategoryL2En,
	"categoryl2_en":  KeyCategoryL2En,
}

// NormalizeHeader ánh xạ một header người dùng nhập về canonical key.
//
// Quy tắc: trim, lowercase, bỏ khoảng trắng và underscore, bỏ phần
// trong ngoặc, rồi tra bảng synonyms. Header không nhận diện được
// trả về nguyên trạng (đã trim) để downstream bỏ qua.
func NormalizeHeader(raw string) string {
	trimmed := strings.TrimSpace(raw)
	canon := strings.ToLower(trimmed)
	canon = headerStripPattern.ReplaceAllString(canon, "")
	canon = headerParenPattern.ReplaceAllString(canon, "")

	if key, ok := headerSynonyms[canon]; ok {
		return key
	}
	return trimmed
}

// NormalizeHeaders chuẩn hóa toàn bộ dòng header
func NormalizeHeaders(raw []string) []string {
	headers := make([]string, len(raw))
	for i, h := range raw {
		headers[i] = NormalizeHeader(h)
	}
	return headers
}
