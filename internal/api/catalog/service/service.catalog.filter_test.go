// Package catalogsvc - Test filter/facet engine trên dữ liệu thuần in-memory.
package catalogsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	models "moa_commerce/internal/api/catalog/models"
)

// sampleProducts dựng một catalog nhỏ đủ đa dạng để kiểm chứng các predicate
func sampleProducts() []models.Product {
	return []models.Product{
		{
			ProductID:  "A",
			Name:       "Pink Envelope",
			Tags:       []string{"traditional", "envelope"},
			CategoryL1: "시즌/시리즈",
			CategoryL2: "전통 시리즈",
			Price:      1500,
			UpdatedAt:  400,
		},
		{
			ProductID:  "B",
			Name:       "Blue Box",
			Tags:       []string{"traditional"},
			CategoryL1: "수납/정리",
			Price:      3000,
			UpdatedAt:  300,
		},
		{
			ProductID: "C",
			Name:      "노트 3권 세트",
			Tags:      []string{"stationery", "note"},
			// CategoryL1 trống: facet phải gom vào bucket "(미지정)"
			Price:     900,
			UpdatedAt: 200,
		},
		{
			ProductID:  "D",
			Name:       "대나무 채반",
			Tags:       []string{"traditional", "kitchen"},
			CategoryL1: "주방",
			Status:     "재입고 예정",
			Price:      0, // giá vắng mặt lưu là 0
			UpdatedAt:  100,
		},
	}
}

func productIDs(products []models.Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ProductID)
	}
	return ids
}

func TestApply_EmptyFilterKeepsAll(t *testing.T) {
	got := Apply(sampleProducts(), &Filter{}, "")
	assert.Equal(t, []string{"A", "B", "C", "D"}, productIDs(got),
		"filter rỗng phải giữ nguyên tập, sort mặc định recency giảm dần")
}

func TestApply_EmptyInput(t *testing.T) {
	got := Apply(nil, &Filter{Query: "mug"}, SortName)
	require.NotNil(t, got)
	assert.Len(t, got, 0)
}

func TestApply_NamelessProductNeverListed(t *testing.T) {
	products := append(sampleProducts(), models.Product{ProductID: "X", Tags: []string{"traditional"}})
	got := Apply(products, &Filter{}, "")
	assert.NotContains(t, productIDs(got), "X")
}

func TestApply_QueryMatchesHaystackCaseInsensitive(t *testing.T) {
	got := Apply(sampleProducts(), &Filter{Query: "  ENVELOPE "}, "")
	assert.Equal(t, []string{"A"}, productIDs(got), "query phải trim + lowercase, khớp cả tags")
}

func TestApply_TagQueryAndSemantics(t *testing.T) {
	// Một token
	got := Apply(sampleProducts(), &Filter{TagQuery: "traditional"}, "")
	assert.Equal(t, []string{"A", "B", "D"}, productIDs(got))

	// Hai token: AND, chỉ sản phẩm có đủ cả hai
	got = Apply(sampleProducts(), &Filter{TagQuery: "traditional | kitchen"}, "")
	assert.Equal(t, []string{"D"}, productIDs(got))
}

func TestApply_CategoryL2IndependentOfL1(t *testing.T) {
	// L2 lọc độc lập, không yêu cầu L1 đi kèm
	got := Apply(sampleProducts(), &Filter{CategoryL2: "전통 시리즈"}, "")
	assert.Equal(t, []string{"A"}, productIDs(got))
}

func TestApply_FacetIncludeExample(t *testing.T) {
	// A(tags chứa traditional, L1=시즌/시리즈) và B(traditional, L1=수납/정리):
	// chọn facet 시즌/시리즈 ở mode include thì chỉ còn A
	f := &Filter{
		TagQuery:  "traditional",
		FacetL1:   []string{"시즌/시리즈"},
		FacetMode: FacetModeInclude,
	}
	got := Apply(sampleProducts(), f, "")
	assert.Equal(t, []string{"A"}, productIDs(got))
}

func TestApply_FacetExcludeMode(t *testing.T) {
	f := &Filter{
		TagQuery:  "traditional",
		FacetL1:   []string{"시즌/시리즈"},
		FacetMode: FacetModeExclude,
	}
	got := Apply(sampleProducts(), f, "")
	assert.Equal(t, []string{"B", "D"}, productIDs(got))
}

func TestApply_FacetInertWithoutTagFilter(t *testing.T) {
	// Facet chỉ hoạt động khi tag filter đang bật
	f := &Filter{FacetL1: []string{"시즌/시리즈"}, FacetMode: FacetModeInclude}
	got := Apply(sampleProducts(), f, "")
	assert.Len(t, got, 4)
}

func TestApply_ExcludeRestock(t *testing.T) {
	got := Apply(sampleProducts(), &Filter{TagQuery: "traditional", ExcludeRestock: true}, "")
	assert.Equal(t, []string{"A", "B"}, productIDs(got),
		"D có status 재입고 예정 nên phải bị loại khi toggle bật")
}

func TestApply_OnlySavedInertWithoutUser(t *testing.T) {
	// SavedIDs nil (chưa đăng nhập): OnlySaved không loại gì cả
	got := Apply(sampleProducts(), &Filter{OnlySaved: true}, "")
	assert.Len(t, got, 4)

	got = Apply(sampleProducts(), &Filter{OnlySaved: true, SavedIDs: map[string]bool{"B": true}}, "")
	assert.Equal(t, []string{"B"}, productIDs(got))
}

func TestApply_PredicateCommutativity(t *testing.T) {
	// Các predicate giao nhau nên kết quả không phụ thuộc tổ hợp từng bước:
	// lọc một lần bằng filter gộp phải bằng lọc tuần tự từng điều kiện
	combined := Apply(sampleProducts(), &Filter{
		TagQuery:       "traditional",
		ExcludeRestock: true,
		Query:          "blue",
	}, "")

	step := Apply(sampleProducts(), &Filter{TagQuery: "traditional"}, "")
	step = Apply(step, &Filter{ExcludeRestock: true}, "")
	step = Apply(step, &Filter{Query: "blue"}, "")

	assert.Equal(t, productIDs(step), productIDs(combined))
}

func TestFacetCountsL1_SumInvariant(t *testing.T) {
	// Tổng facet count trên mọi bucket = kích thước tập đã lọc bởi
	// saved-only + tag + text (chưa áp facet)
	f := &Filter{TagQuery: "traditional", FacetL1: []string{"시즌/시리즈"}, FacetMode: FacetModeInclude}
	counts := FacetCountsL1(sampleProducts(), f)

	var sum int64
	for _, c := range counts {
		sum += c
	}

	base := Apply(sampleProducts(), &Filter{TagQuery: "traditional"}, "")
	assert.Equal(t, int64(len(base)), sum, "facet không được tự khấu trừ lựa chọn facet hiện tại")

	assert.Equal(t, int64(1), counts["시즌/시리즈"])
	assert.Equal(t, int64(1), counts["수납/정리"])
	assert.Equal(t, int64(1), counts["주방"])
}

func TestFacetCountsL1_UnspecifiedBucket(t *testing.T) {
	counts := FacetCountsL1(sampleProducts(), &Filter{})
	assert.Equal(t, int64(1), counts[FacetUnspecified], "sản phẩm không có L1 phải rơi vào bucket sentinel")
}

func TestIsRestockPending(t *testing.T) {
	cases := []struct {
		name string
		p    models.Product
		want bool
	}{
		{"flag tường minh", models.Product{RestockPending: true}, true},
		{"flag restockSoon", models.Product{RestockSoon: true}, true},
		{"keyword trong status", models.Product{Status: "재입고 예정"}, true},
		{"keyword chen khoảng trắng", models.Product{BadgeText: "재입고   예정"}, true},
		{"keyword trong tags", models.Product{Tags: []string{"신상", "재입고예정"}}, true},
		{"keyword trong badges", models.Product{Badges: []string{"8월 재입고 예정"}}, true},
		{"bình thường", models.Product{Name: "Mug", Status: "판매중"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsRestockPending(&tc.p))
		})
	}
}

func TestSortProducts_PriceAndMissingPriceAsZero(t *testing.T) {
	products := sampleProducts()
	SortProducts(products, SortPriceAsc)
	assert.Equal(t, []string{"D", "C", "A", "B"}, productIDs(products),
		"giá vắng mặt (0) phải đứng đầu khi sort tăng dần")

	SortProducts(products, SortPriceDesc)
	assert.Equal(t, []string{"B", "A", "C", "D"}, productIDs(products))
}

func TestSortProducts_NameKoreanCollation(t *testing.T) {
	products := []models.Product{
		{ProductID: "1", Name: "바구니"},
		{ProductID: "2", Name: "가위"},
		{ProductID: "3", Name: "수세미"},
	}
	SortProducts(products, SortName)
	assert.Equal(t, []string{"2", "1", "3"}, productIDs(products),
		"가위 < 바구니 < 수세미 theo thứ tự bảng chữ cái Hàn")
}

func TestSortProducts_RecencyFallbackAndTieBreak(t *testing.T) {
	products := []models.Product{
		{ProductID: "old", CreatedAt: 50},       // không có updatedAt: fallback createdAt
		{ProductID: "a", UpdatedAt: 100},
		{ProductID: "b", UpdatedAt: 100},        // cùng mốc: tie-break productId giảm dần
		{ProductID: "new", UpdatedAt: 200},
	}
	SortProducts(products, "")
	assert.Equal(t, []string{"new", "b", "a", "old"}, productIDs(products))
}
