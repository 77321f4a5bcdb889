package csvio

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	// cleanSpacePattern gom các chuỗi khoảng trắng liên tiếp về một space
	cleanSpacePattern = regexp.MustCompile(`\s+`)

	// numericPattern giữ lại chữ số và dấu chấm thập phân
	numericPattern = regexp.MustCompile(`[^\d.]`)

	// stockPattern giữ lại chữ số và dấu trừ (tồn kho có thể âm)
	stockPattern = regexp.MustCompile(`[^\d-]`)

	// koreanCountNoise loại bỏ khoảng trắng, dấu phẩy, ngoặc và chữ "보기"
	// thường dính kèm số lượt xem/review crawl từ trang bán hàng
	koreanCountNoise = regexp.MustCompile(`[\s,()보기]`)

	// koreanManPattern bắt số kèm hậu tố 만 (x10.000)
	koreanManPattern = regexp.MustCompile(`([\d.]+)\s*만`)

	// koreanCheonPattern bắt số kèm hậu tố 천 (x1.000)
	koreanCheonPattern = regexp.MustCompile(`([\d.]+)\s*천`)

	// plainNumberPattern bắt chuỗi số đầu tiên trong text
	plainNumberPattern = regexp.MustCompile(`[\d.]+`)

	// truthyPattern là tập token được coi là true của trường boolean
	truthyPattern = regexp.MustCompile(`(?i)^(true|1|yes|y|예)$`)

	// tagSeparatorPattern tách danh sách tag theo , | # / và khoảng trắng
	tagSeparatorPattern = regexp.MustCompile(`[,|#/\s]+`)
)

// CleanText chuẩn hóa một chuỗi: gom khoảng trắng, bỏ quote bao quanh, trim
func CleanText(s string) string {
	out := cleanSpacePattern.ReplaceAllString(s, " ")
	out = strings.TrimPrefix(out, `"`)
	out = strings.TrimSuffix(out, `"`)
	return strings.TrimSpace(out)
}

// parseFloat parse chuỗi số đã lọc, trả về 0 nếu không hợp lệ
func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// ParsePrice parse giá: bỏ mọi ký tự không phải chữ số/dấu chấm,
// text không parse được trả về 0, không bao giờ lỗi.
func ParsePrice(text string) int64 {
	n := numericPattern.ReplaceAllString(text, "")
	if n == "" {
		return 0
	}
	return int64(parseFloat(n))
}

// ParseRating parse điểm đánh giá dạng thập phân, lỗi trả về 0
func ParseRating(text string) float64 {
	n := numericPattern.ReplaceAllString(text, "")
	if n == "" {
		return 0
	}
	return parseFloat(n)
}

// ParseStock parse số tồn kho, chấp nhận giá trị âm, lỗi trả về 0
func ParseStock(text string) int64 {
	n := stockPattern.ReplaceAllString(text, "")
	if n == "" || n == "-" {
		return 0
	}
	v, err := strconv.ParseInt(n, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseKoreanCount parse số đếm kiểu Hàn: "1.2만" = 12.000, "3천" = 3.000.
// Không có hậu tố thì lấy chuỗi số đầu tiên, không parse được trả về 0.
func ParseKoreanCount(text string) int64 {
	t := koreanCountNoise.ReplaceAllString(text, "")
	if t == "" {
		return 0
	}
	if m := koreanManPattern.FindStringSubmatch(t); m != nil {
		return int64(math.Round(parseFloat(m[1]) * 10000))
	}
	if m := koreanCheonPattern.FindStringSubmatch(t); m != nil {
		return int64(math.Round(parseFloat(m[1]) * 1000))
	}
	if m := plainNumberPattern.FindString(t); m != "" {
		return int64(parseFloat(m))
	}
	return 0
}

// ParseTruthy kiểm tra token boolean: true/1/yes/y/예 (không phân biệt hoa thường)
func ParseTruthy(text string) bool {
	return truthyPattern.MatchString(strings.TrimSpace(text))
}

// TokenizeTags tách chuỗi tag theo các separator , | # / và khoảng trắng,
// lowercase và loại trùng lặp, giữ thứ tự xuất hiện đầu tiên.
// Hàm là idempotent: tokenize lại kết quả đã join cho ra cùng một tập.
func TokenizeTags(input string) []string {
	parts := tagSeparatorPattern.Split(input, -1)
	seen := make(map[string]struct{}, len(parts))
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.ToLower(strings.TrimSpace(p))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		tags = append(tags, t)
	}
	return tags
}
