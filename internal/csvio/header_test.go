// Package csvio - Test chuẩn hóa header Hàn/Anh về canonical key.
package csvio

import "testing"

func TestNormalizeHeader_KnownSynonyms(t *testing.T) {
	cases := map[string]string{
		"id":              KeyID,
		"상품ID":          KeyID,
		"Product ID":      KeyID,
		"상품명":          KeyName,
		"Product Name":    KeyName,
		"영문명":          KeyNameEn,
		"Product Name EN": KeyNameEn,
		"상품코드":        KeyProductCode,
		"가격":            KeyPrice,
		"가격(원)":        KeyPrice,
		"Price":           KeyPrice,
		"평점":            KeyRating,
		"리뷰수":          KeyReviewCount,
		"Reviews":         KeyReviewCount,
		"조회수":          KeyViews,
		"태그":            KeyTags,
		"Tags":            KeyTags,
		"링크":            KeyLink,
		"URL":             KeyLink,
		"이미지URL":       KeyImageUrl,
		"Image URL":       KeyImageUrl,
		"재입고":          KeyRestockable,
		"상태":            KeyStatus,
		"재고수량":        KeyStock,
		"대분류":          KeyCategoryL1,
		"Category L1":     KeyCategoryL1,
		"중분류":          KeyCategoryL2,
		"대분류EN":        KeyCategoryL1En,
		"Category L2 EN":  KeyCategoryL2En,
	}
	for raw, want := range cases {
		if got := NormalizeHeader(raw); got != want {
			t.Errorf("NormalizeHeader(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestNormalizeHeader_UnknownPassThrough(t *testing.T) {
	if got := NormalizeHeader("  Has Image  "); got != "Has Image" {
		t.Errorf("header lạ phải trả về nguyên trạng đã trim, got %q", got)
	}
}

func TestNormalizeHeader_Idempotent(t *testing.T) {
	for _, raw := range []string{"상품명", "Product ID", "가격(원)", "Unknown Col"} {
		once := NormalizeHeader(raw)
		twice := NormalizeHeader(once)
		if once != twice {
			t.Errorf("NormalizeHeader không idempotent với %q: %q != %q", raw, once, twice)
		}
	}
}

func TestMapRows_ColumnOrderIndependent(t *testing.T) {
	a := ParseDelimited("id,name,price\n7,Mug,1000")
	b := ParseDelimited("price,id,name\n1000,7,Mug")

	rowsA, _ := MapRows(a)
	rowsB, _ := MapRows(b)
	if len(rowsA) != 1 || len(rowsB) != 1 {
		t.Fatalf("MapRows phải ra đúng 1 dòng: %d, %d", len(rowsA), len(rowsB))
	}
	if rowsA[0].ID != rowsB[0].ID || *rowsA[0].Name != *rowsB[0].Name || *rowsA[0].Price != *rowsB[0].Price {
		t.Error("đổi thứ tự cột làm thay đổi kết quả mapping")
	}
}
