// Package catalogsvc - Test tính toàn vẹn của từ điển phân loại seed.
package catalogsvc

import (
	"strings"
	"testing"
)

func TestCategorySeed_Integrity(t *testing.T) {
	seenKey := make(map[string]bool, len(categorySeed))
	l1Keys := make(map[string]bool)
	l1Labels := make(map[string]bool)

	for _, c := range categorySeed {
		if c.Key == "" || c.LabelKo == "" {
			t.Errorf("mục seed thiếu key hoặc labelKo: %+v", c)
		}
		if seenKey[c.Key] {
			t.Errorf("key trùng lặp: %q", c.Key)
		}
		seenKey[c.Key] = true

		if c.ParentKey == "" {
			l1Keys[c.Key] = true
			if l1Labels[c.LabelKo] {
				t.Errorf("nhãn L1 trùng lặp: %q", c.LabelKo)
			}
			l1Labels[c.LabelKo] = true
			if strings.Contains(c.Key, ".") {
				t.Errorf("key L1 không được chứa dấu chấm: %q", c.Key)
			}
		}
	}

	for _, c := range categorySeed {
		if c.ParentKey == "" {
			continue
		}
		if !l1Keys[c.ParentKey] {
			t.Errorf("mục con %q trỏ đến parent không tồn tại: %q", c.Key, c.ParentKey)
		}
		if !strings.HasPrefix(c.Key, c.ParentKey+".") {
			t.Errorf("key con phải có dạng parent.child: key=%q parent=%q", c.Key, c.ParentKey)
		}
	}

	if len(l1Keys) != 13 {
		t.Errorf("từ điển phải có đúng 13 danh mục cấp 1, got %d", len(l1Keys))
	}
}

func TestCategorySeed_KnownEntries(t *testing.T) {
	byKey := make(map[string]string, len(categorySeed))
	for _, c := range categorySeed {
		byKey[c.Key] = c.LabelKo
	}
	if byKey["seasonal_series"] != "시즌/시리즈" {
		t.Errorf("seasonal_series phải có nhãn 시즌/시리즈, got %q", byKey["seasonal_series"])
	}
	if byKey["seasonal_series.traditional"] != "전통 시리즈" {
		t.Errorf("seasonal_series.traditional phải có nhãn 전통 시리즈, got %q", byKey["seasonal_series.traditional"])
	}
	if byKey["kitchen"] != "주방" {
		t.Errorf("kitchen phải có nhãn 주방, got %q", byKey["kitchen"])
	}
}
