// Package catalogsvc - service domain catalog: filter/facet engine,
// import/export CSV, quản lý danh mục và thao tác hàng loạt.
package catalogsvc

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	models "moa_commerce/internal/api/catalog/models"
	"moa_commerce/internal/csvio"
)

// FacetUnspecified là nhãn sentinel cho sản phẩm không có danh mục cấp 1
const FacetUnspecified = "(미지정)"

// Các khóa sort hợp lệ cho catalog
const (
	SortRecency   = "recency"
	SortPriceDesc = "priceDesc"
	SortPriceAsc  = "priceAsc"
	SortName      = "name"
)

// Facet mode
const (
	FacetModeInclude = "include"
	FacetModeExclude = "exclude"
)

// restockPattern khớp cụm "재입고 예정" (sắp nhập lại hàng), chấp nhận
// khoảng trắng chen giữa
var restockPattern = regexp.MustCompile(`(?i)재입고\s*예정`)

// Filter là tập điều kiện lọc độc lập, mỗi điều kiện mặc định tắt.
// Các predicate giao nhau trái-sang-phải; thứ tự không đổi kết quả cuối.
type Filter struct {
	Query          string          // substring không phân biệt hoa thường trên haystack
	CategoryL1     string          // khớp chính xác
	CategoryL2     string          // khớp chính xác (độc lập với L1, giữ nguyên hành vi nguồn)
	TagQuery       string          // token hóa như tags CSV, ngữ nghĩa AND
	ExcludeRestock bool            // loại sản phẩm sắp nhập lại hàng
	OnlySaved      bool            // chỉ giữ sản phẩm trong SavedIDs
	SavedIDs       map[string]bool // set productId đã lưu của user; nil ⇒ OnlySaved vô hiệu
	FacetL1        []string        // các giá trị L1 được chọn trên facet
	FacetMode      string          // include | exclude; chỉ áp dụng khi TagQuery không rỗng
}

// Haystack ghép các trường tìm kiếm thành một chuỗi lowercase duy nhất
func Haystack(p *models.Product) string {
	parts := []string{
		p.Name,
		p.NameEn,
		p.ProductCode,
		p.CategoryL1,
		p.CategoryL2,
		strings.Join(p.Tags, " "),
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// IsRestockPending kiểm tra sản phẩm có đang ở trạng thái "sắp nhập lại hàng" không.
// Flag tường minh hoặc keyword trong các trường text đều tính.
func IsRestockPending(p *models.Product) bool {
	if p.RestockPending || p.RestockSoon {
		return true
	}

	fields := []string{
		strings.Join(p.Tags, " "),
		strings.Join(p.Badges, " "),
		strings.Join(p.Labels, " "),
		p.Status,
		p.NameBadge,
		p.BadgeText,
	}
	for _, f := range fields {
		if f != "" && restockPattern.MatchString(f) {
			return true
		}
	}
	return false
}

// tagTokens token hóa chuỗi tag filter giống hệt tags trong CSV
func tagTokens(query string) []string {
	return csvio.TokenizeTags(query)
}

// hasAllTags kiểm tra sản phẩm chứa TẤT CẢ token (ngữ nghĩa AND)
func hasAllTags(p *models.Product, tokens []string) bool {
	if len(tokens) == 0 {
		return true
	}
	tagSet := make(map[string]bool, len(p.Tags))
	for _, t := range p.Tags {
		tagSet[strings.ToLower(t)] = true
	}
	for _, token := range tokens {
		if !tagSet[token] {
			return false
		}
	}
	return true
}

// matchesBase áp dụng các predicate dùng chung cho cả kết quả hiển thị
// và mẫu số facet: saved-only, tag-AND, text query.
func (f *Filter) matchesBase(p *models.Product, tokens []string) bool {
	// Sản phẩm không có tên không bao giờ xuất hiện trong listing
	if p.Name == "" {
		return false
	}

	if f.OnlySaved {
		// Không có user đăng nhập (SavedIDs nil) thì toggle vô hiệu
		if f.SavedIDs != nil && !f.SavedIDs[p.ProductID] {
			return false
		}
	}

	if !hasAllTags(p, tokens) {
		return false
	}

	if f.Query != "" {
		if !strings.Contains(Haystack(p), strings.ToLower(strings.TrimSpace(f.Query))) {
			return false
		}
	}

	return true
}

// matches áp dụng đầy đủ các predicate cho kết quả hiển thị
func (f *Filter) matches(p *models.Product, tokens []string) bool {
	if !f.matchesBase(p, tokens) {
		return false
	}

	if f.CategoryL1 != "" && p.CategoryL1 != f.CategoryL1 {
		return false
	}
	if f.CategoryL2 != "" && p.CategoryL2 != f.CategoryL2 {
		return false
	}

	if f.ExcludeRestock && IsRestockPending(p) {
		return false
	}

	// Facet chỉ hoạt động khi tag filter đang bật
	if len(tokens) > 0 && len(f.FacetL1) > 0 {
		bucket := p.CategoryL1
		if bucket == "" {
			bucket = FacetUnspecified
		}
		selected := false
		for _, v := range f.FacetL1 {
			if v == bucket {
				selected = true
				break
			}
		}
		if f.FacetMode == FacetModeExclude {
			if selected {
				return false
			}
		} else if !selected {
			return false
		}
	}

	return true
}

// Apply lọc danh sách sản phẩm theo filter rồi sort.
// Danh sách rỗng trả về mảng rỗng, không lỗi.
func Apply(products []models.Product, f *Filter, sortKey string) []models.Product {
	tokens := tagTokens(f.TagQuery)

	result := make([]models.Product, 0, len(products))
	for i := range products {
		if f.matches(&products[i], tokens) {
			result = append(result, products[i])
		}
	}

	SortProducts(result, sortKey)
	return result
}

// FacetCountsL1 đếm số sản phẩm theo danh mục cấp 1 trên tập đã lọc bởi
// saved-only + tag + text (KHÔNG tính các facet đang chọn, tránh feedback loop).
func FacetCountsL1(products []models.Product, f *Filter) map[string]int64 {
	tokens := tagTokens(f.TagQuery)

	counts := make(map[string]int64)
	for i := range products {
		p := &products[i]
		if !f.matchesBase(p, tokens) {
			continue
		}
		bucket := p.CategoryL1
		if bucket == "" {
			bucket = FacetUnspecified
		}
		counts[bucket]++
	}
	return counts
}

// SortProducts sort danh sách theo một trong bốn thứ tự.
// Mặc định (khóa rỗng hoặc không hợp lệ) là recency giảm dần.
func SortProducts(products []models.Product, sortKey string) {
	switch sortKey {
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortName:
		// So sánh theo collation tiếng Hàn để tên Hàn xếp đúng thứ tự bảng chữ cái
		collator := collate.New(language.Korean)
		sort.SliceStable(products, func(i, j int) bool {
			return collator.CompareString(products[i].Name, products[j].Name) < 0
		})
	default:
		sort.SliceStable(products, func(i, j int) bool {
			ti := recencyKey(&products[i])
			tj := recencyKey(&products[j])
			if ti != tj {
				return ti > tj
			}
			// Tie-break bằng productId giảm dần cho deterministic
			return products[i].ProductID > products[j].ProductID
		})
	}
}

// recencyKey lấy thời điểm dùng cho sort recency: updatedAt, fallback createdAt, fallback 0
func recencyKey(p *models.Product) int64 {
	if p.UpdatedAt != 0 {
		return p.UpdatedAt
	}
	return p.CreatedAt
}
