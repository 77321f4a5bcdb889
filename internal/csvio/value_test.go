// Package csvio - Test ép kiểu giá trị: giá, số đếm kiểu Hàn, boolean, tag.
package csvio

import (
	"reflect"
	"strings"
	"testing"
)

func TestParsePrice(t *testing.T) {
	cases := map[string]int64{
		"1000":    1000,
		"₩12,500": 12500,
		"12.500원": 12500,
		"":        0,
		"abc":     0,
		"1.2.3":   0,
	}
	for in, want := range cases {
		if got := ParsePrice(in); got != want {
			t.Errorf("ParsePrice(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestParseKoreanCount(t *testing.T) {
	cases := map[string]int64{
		"1.2만":        12000,
		"3만":          30000,
		"5천":          5000,
		"1,234":        1234,
		"리뷰 850보기": 850,
		"(2.5만)":      25000,
		"":             0,
		"없음":         0,
	}
	for in, want := range cases {
		if got := ParseKoreanCount(in); got != want {
			t.Errorf("ParseKoreanCount(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestParseStock_Negative(t *testing.T) {
	if got := ParseStock("-3개"); got != -3 {
		t.Errorf("ParseStock phải giữ dấu âm, got %d", got)
	}
}

func TestParseTruthy(t *testing.T) {
	for _, in := range []string{"true", "TRUE", "1", "yes", "Y", "예", " 예 "} {
		if !ParseTruthy(in) {
			t.Errorf("ParseTruthy(%q) phải là true", in)
		}
	}
	for _, in := range []string{"", "no", "0", "false", "아니오", "yess"} {
		if ParseTruthy(in) {
			t.Errorf("ParseTruthy(%q) phải là false", in)
		}
	}
}

func TestTokenizeTags(t *testing.T) {
	got := TokenizeTags("Kitchen | mug, MUG #ceramic/gift new")
	want := []string{"kitchen", "mug", "ceramic", "gift", "new"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TokenizeTags sai: got %v, want %v", got, want)
	}
}

func TestTokenizeTags_Idempotent(t *testing.T) {
	first := TokenizeTags("Trad | Gift, gift #box")
	second := TokenizeTags(strings.Join(first, ","))
	if !reflect.DeepEqual(first, second) {
		t.Errorf("TokenizeTags không idempotent: %v != %v", first, second)
	}
}

func TestCleanText(t *testing.T) {
	if got := CleanText(`"Red   Mug"`); got != "Red Mug" {
		t.Errorf("CleanText sai: %q", got)
	}
}
