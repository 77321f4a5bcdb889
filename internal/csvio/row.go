package csvio

import "strings"

// SkipReason cho biết vì sao một dòng CSV bị loại khỏi kết quả mapping
type SkipReason string

const (
	SkipNone      SkipReason = ""           // Dòng hợp lệ
	SkipMissingID SkipReason = "missing_id" // Không resolve được định danh sản phẩm
)

// ProductRow là kết quả mapping một dòng CSV về schema sản phẩm.
// Các trường con trỏ nil nghĩa là "không có trong dòng", merge mode
// dựa vào đó để không ghi đè dữ liệu đã lưu. Tags nil cũng nghĩa là
// cột tag không có giá trị trong dòng này.
type ProductRow struct {
	ID           string
	Name         *string
	NameEn       *string
	ProductCode  *string
	Price        *int64
	Rating       *float64
	ReviewCount  *int64
	Views        *int64
	Tags         []string
	Link         *string
	ImageUrl     *string
	Restockable  *bool
	Status       *string
	Stock        *int64
	CategoryL1   *string
	CategoryL2   *string
	CategoryL1En *string
	CategoryL2En *string
}

// RowToProduct zip các ô của một dòng với header đã chuẩn hóa và
// ép kiểu về ProductRow.
//
// Định danh lấy từ cột id, fallback sang productCode; không resolve
// được thì dòng bị skip. Ô rỗng (sau khi clean) được coi là "không có",
// không phải ghi đè rỗng, trừ khi caller chọn overwrite mode ở tầng trên.
func RowToProduct(row []string, headers []string) (*ProductRow, SkipReason) {
	cells := make(map[string]string, len(headers))
	for i, key := range headers {
		if i < len(row) {
			cells[key] = row[i]
		} else {
			cells[key] = ""
		}
	}

	id := CleanText(cells[KeyID])
	if id == "" {
		id = CleanText(cells[KeyProductCode])
	}
	if id == "" {
		return nil, SkipMissingID
	}

	product := &ProductRow{ID: id}

	setString(&product.Name, cells[KeyName])
	setString(&product.NameEn, cells[KeyNameEn])
	setString(&product.ProductCode, cells[KeyProductCode])
	setString(&product.ImageUrl, cells[KeyImageUrl])
	setString(&product.Link, cells[KeyLink])
	setString(&product.CategoryL1, cells[KeyCategoryL1])
	setString(&product.CategoryL2, cells[KeyCategoryL2])
	setString(&product.CategoryL1En, cells[KeyCategoryL1En])
	setString(&product.CategoryL2En, cells[KeyCategoryL2En])

	if raw := cells[KeyPrice]; strings.TrimSpace(raw) != "" {
		v := ParsePrice(raw)
		product.Price = &v
	}
	if raw := cells[KeyRating]; strings.TrimSpace(raw) != "" {
		v := ParseRating(raw)
		product.Rating = &v
	}
	if raw := cells[KeyReviewCount]; strings.TrimSpace(raw) != "" {
		v := ParseKoreanCount(raw)
		product.ReviewCount = &v
	}
	if raw := cells[KeyViews]; strings.TrimSpace(raw) != "" {
		v := ParseKoreanCount(raw)
		product.Views = &v
	}
	if raw := cells[KeyStock]; strings.TrimSpace(raw) != "" {
		v := ParseStock(raw)
		product.Stock = &v
	}
	if raw := cells[KeyRestockable]; strings.TrimSpace(raw) != "" {
		v := ParseTruthy(raw)
		product.Restockable = &v
	}
	if raw := cells[KeyStatus]; strings.TrimSpace(raw) != "" {
		v := strings.TrimSpace(raw)
		product.Status = &v
	}
	if raw := cells[KeyTags]; strings.TrimSpace(raw) != "" {
		product.Tags = TokenizeTags(raw)
	}

	return product, SkipNone
}

// setString gán giá trị đã clean cho trường string, bỏ qua nếu rỗng
func setString(dst **string, raw string) {
	v := CleanText(raw)
	if v == "" {
		return
	}
	*dst = &v
}

// MapRows parse toàn bộ bảng CSV đã tách (dòng đầu là header) thành
// danh sách ProductRow, trả về kèm số dòng bị skip do thiếu định danh.
func MapRows(table [][]string) (rows []*ProductRow, skipped int) {
	if len(table) < 2 {
		return nil, 0
	}
	headers := NormalizeHeaders(table[0])
	for _, raw := range table[1:] {
		product, reason := RowToProduct(raw, headers)
		if reason != SkipNone {
			skipped++
			continue
		}
		rows = append(rows, product)
	}
	return rows, skipped
}
