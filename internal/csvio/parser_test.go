// Package csvio - Test parser CSV: BOM, quote RFC4180, tách tab/phẩy, bỏ dòng rỗng.
package csvio

import (
	"reflect"
	"testing"
)

func TestParseDelimited_CommaBasic(t *testing.T) {
	rows := ParseDelimited("a,b,c\n1,2,3")
	want := [][]string{{"a", "b", "c"}, {"1", "2", "3"}}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("ParseDelimited sai, got %v, want %v", rows, want)
	}
}

func TestParseDelimited_StripBom(t *testing.T) {
	rows := ParseDelimited("\uFEFFid,name\n1,Mug")
	if rows[0][0] != "id" {
		t.Errorf("BOM chưa được bỏ khỏi ô đầu tiên: %q", rows[0][0])
	}
}

func TestParseDelimited_TabSeparator(t *testing.T) {
	rows := ParseDelimited("id\tname\n1\tRed Mug")
	if len(rows) != 2 || len(rows[1]) != 2 {
		t.Fatalf("tách tab sai: %v", rows)
	}
	if rows[1][1] != "Red Mug" {
		t.Errorf("ô thứ hai sai: %q", rows[1][1])
	}
}

func TestParseDelimited_QuotedSeparatorAndNewline(t *testing.T) {
	rows := ParseDelimited("id,name\n1,\"Mug, Large\"\n2,\"Line1\nLine2\"")
	if rows[1][1] != "Mug, Large" {
		t.Errorf("separator trong quote bị tách nhầm: %q", rows[1][1])
	}
	if rows[2][1] != "Line1\nLine2" {
		t.Errorf("xuống dòng trong quote bị tách nhầm: %q", rows[2][1])
	}
}

func TestParseDelimited_DoubledQuote(t *testing.T) {
	rows := ParseDelimited(`1,"He said ""hi"""`)
	if rows[0][1] != `He said "hi"` {
		t.Errorf("quote đôi không thành quote literal: %q", rows[0][1])
	}
}

func TestParseDelimited_DropBlankRows(t *testing.T) {
	rows := ParseDelimited("a,b\n , \n\n1,2\n")
	if len(rows) != 2 {
		t.Errorf("dòng rỗng chưa bị loại, còn %d dòng: %v", len(rows), rows)
	}
}

func TestParseDelimited_CrlfAndCr(t *testing.T) {
	rows := ParseDelimited("a,b\r\n1,2\r3,4")
	if len(rows) != 3 {
		t.Fatalf("chuẩn hóa CRLF/CR sai, còn %d dòng: %v", len(rows), rows)
	}
}

func TestParseDelimited_MalformedQuoteStillSplits(t *testing.T) {
	// Quote hỏng vẫn phải cho ra kết quả best-effort, không panic/lỗi
	rows := ParseDelimited("1,\"unclosed\n2,next")
	if len(rows) == 0 {
		t.Error("quote hỏng không được làm mất toàn bộ dữ liệu")
	}
}

func TestParseDelimited_Empty(t *testing.T) {
	if rows := ParseDelimited(""); len(rows) != 0 {
		t.Errorf("text rỗng phải ra 0 dòng, got %v", rows)
	}
}
