package csvio

import (
	"strconv"
	"strings"
)

// ExportHeader là dòng tiêu đề chuẩn của file CSV export.
// Các tên cột này nằm trong bảng synonyms của NormalizeHeader
// nên file export có thể import ngược lại nguyên vẹn.
var ExportHeader = []string{
	"Product ID", "Product Name", "Product Name EN", "Product Code",
	"Price", "Rating", "Reviews", "Views",
	"Tags", "Link", "Image URL", "Has Image",
	"Category L1", "Category L2", "Category L1 EN", "Category L2 EN",
}

// ExportRecord là một dòng dữ liệu sản phẩm cần export
type ExportRecord struct {
	ID           string
	Name         string
	NameEn       string
	ProductCode  string
	Price        int64
	Rating       float64
	ReviewCount  int64
	Views        int64
	Tags         []string
	Link         string
	ImageUrl     string
	CategoryL1   string
	CategoryL2   string
	CategoryL1En string
	CategoryL2En string
}

// Escape bọc giá trị trong quote nếu chứa quote, dấu phẩy hoặc xuống dòng,
// quote bên trong được nhân đôi theo RFC4180.
func Escape(v string) string {
	if strings.ContainsAny(v, "\",\n\r") {
		return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
	}
	return v
}

// BuildCsv dựng nội dung CSV export với line ending CRLF.
// Caller chịu trách nhiệm thêm Bom vào đầu khi ghi ra file/response.
func BuildCsv(records []ExportRecord) string {
	var sb strings.Builder

	cols := make([]string, len(ExportHeader))
	for i, h := range ExportHeader {
		cols[i] = Escape(h)
	}
	sb.WriteString(strings.Join(cols, ","))

	for _, r := range records {
		hasImage := "N"
		if r.ImageUrl != "" {
			hasImage = "Y"
		}
		fields := []string{
			r.ID,
			r.Name,
			r.NameEn,
			r.ProductCode,
			strconv.FormatInt(r.Price, 10),
			formatRating(r.Rating),
			strconv.FormatInt(r.ReviewCount, 10),
			strconv.FormatInt(r.Views, 10),
			strings.Join(r.Tags, " | "),
			r.Link,
			r.ImageUrl,
			hasImage,
			r.CategoryL1,
			r.CategoryL2,
			r.CategoryL1En,
			r.CategoryL2En,
		}
		for i, f := range fields {
			fields[i] = Escape(f)
		}
		sb.WriteString("\r\n")
		sb.WriteString(strings.Join(fields, ","))
	}

	return sb.String()
}

// formatRating format điểm đánh giá, bỏ phần thập phân thừa
func formatRating(r float64) string {
	if r == 0 {
		return "0"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
