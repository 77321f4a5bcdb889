// Package csvio - Test mapping dòng CSV về ProductRow và round-trip export/import.
package csvio

import (
	"reflect"
	"strings"
	"testing"
)

func TestRowToProduct_IdFallbackToProductCode(t *testing.T) {
	headers := []string{KeyID, KeyProductCode, KeyName}
	p, reason := RowToProduct([]string{"", "PD-9", "Mug"}, headers)
	if reason != SkipNone {
		t.Fatalf("dòng có productCode không được skip, reason=%q", reason)
	}
	if p.ID != "PD-9" {
		t.Errorf("id phải fallback sang productCode, got %q", p.ID)
	}
}

func TestRowToProduct_SkipWithoutId(t *testing.T) {
	headers := []string{KeyID, KeyName}
	p, reason := RowToProduct([]string{"  ", "Mug"}, headers)
	if p != nil || reason != SkipMissingID {
		t.Errorf("dòng thiếu định danh phải bị skip, got p=%v reason=%q", p, reason)
	}
}

func TestRowToProduct_BlankCellMeansAbsent(t *testing.T) {
	// Ví dụ chuẩn: Blue Mug có ô price rỗng thì Price phải nil (absent),
	// merge mode dựa vào đó để giữ giá đã lưu.
	table := ParseDelimited("id,name,price,tags\n1,Red Mug,1000,\"kitchen | mug\"\n2,Blue Mug,,kitchen")
	rows, skipped := MapRows(table)
	if skipped != 0 || len(rows) != 2 {
		t.Fatalf("MapRows sai: rows=%d skipped=%d", len(rows), skipped)
	}

	red := rows[0]
	if red.Price == nil || *red.Price != 1000 {
		t.Errorf("Red Mug phải có price 1000, got %v", red.Price)
	}
	if !reflect.DeepEqual(red.Tags, []string{"kitchen", "mug"}) {
		t.Errorf("Red Mug tags sai: %v", red.Tags)
	}

	blue := rows[1]
	if blue.Price != nil {
		t.Errorf("Blue Mug có ô price rỗng thì Price phải nil, got %v", *blue.Price)
	}
	if !reflect.DeepEqual(blue.Tags, []string{"kitchen"}) {
		t.Errorf("Blue Mug tags sai: %v", blue.Tags)
	}
}

func TestRowToProduct_NumericCoercion(t *testing.T) {
	headers := []string{KeyID, KeyPrice, KeyReviewCount, KeyViews, KeyRating, KeyRestockable}
	p, _ := RowToProduct([]string{"1", "₩9,900", "1.2만", "3천", "4.5점", "예"}, headers)
	if *p.Price != 9900 {
		t.Errorf("price sai: %d", *p.Price)
	}
	if *p.ReviewCount != 12000 {
		t.Errorf("reviewCount sai: %d", *p.ReviewCount)
	}
	if *p.Views != 3000 {
		t.Errorf("views sai: %d", *p.Views)
	}
	if *p.Rating != 4.5 {
		t.Errorf("rating sai: %v", *p.Rating)
	}
	if p.Restockable == nil || !*p.Restockable {
		t.Error("restockable '예' phải là true")
	}
}

func TestRowToProduct_ShortRow(t *testing.T) {
	headers := []string{KeyID, KeyName, KeyPrice}
	p, reason := RowToProduct([]string{"5"}, headers)
	if reason != SkipNone {
		t.Fatalf("dòng thiếu ô vẫn phải map được, reason=%q", reason)
	}
	if p.Name != nil || p.Price != nil {
		t.Error("các ô không tồn tại phải là absent")
	}
}

func TestBuildCsv_RoundTrip(t *testing.T) {
	records := []ExportRecord{
		{
			ID: "1", Name: "Red Mug", NameEn: "red mug", ProductCode: "PD-1",
			Price: 1000, Rating: 4.5, ReviewCount: 12000, Views: 300,
			Tags: []string{"kitchen", "mug"}, Link: "https://example.com/1",
			ImageUrl: "https://img.example.com/1.jpg",
			CategoryL1: "주방", CategoryL2: "컵", CategoryL1En: "Kitchen", CategoryL2En: "Cup",
		},
		{ID: "2", Name: "Blue Box, Large", Tags: []string{"storage"}},
	}

	csv := BuildCsv(records)
	if !strings.Contains(csv, "\r\n") {
		t.Error("export phải dùng CRLF")
	}
	if !strings.Contains(csv, `"Blue Box, Large"`) {
		t.Error("giá trị chứa dấu phẩy phải được quote")
	}

	rows, skipped := MapRows(ParseDelimited(csv))
	if skipped != 0 || len(rows) != 2 {
		t.Fatalf("round-trip sai: rows=%d skipped=%d", len(rows), skipped)
	}

	p := rows[0]
	if p.ID != "1" || *p.Name != "Red Mug" || *p.NameEn != "red mug" ||
		*p.ProductCode != "PD-1" || *p.Price != 1000 || *p.Rating != 4.5 ||
		*p.ReviewCount != 12000 || *p.Views != 300 ||
		*p.Link != "https://example.com/1" || *p.ImageUrl != "https://img.example.com/1.jpg" ||
		*p.CategoryL1 != "주방" || *p.CategoryL2 != "컵" ||
		*p.CategoryL1En != "Kitchen" || *p.CategoryL2En != "Cup" {
		t.Errorf("round-trip làm sai lệch dữ liệu: %+v", p)
	}
	if !reflect.DeepEqual(p.Tags, []string{"kitchen", "mug"}) {
		t.Errorf("round-trip tags sai: %v", p.Tags)
	}
}
