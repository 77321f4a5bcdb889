// Package csvio xử lý dữ liệu CSV của catalog: parse văn bản thô,
// chuẩn hóa header đa ngôn ngữ (Hàn/Anh), ép kiểu giá trị lỏng lẻo
// và dựng nội dung CSV export.
//
// Toàn bộ các hàm trong package là total function: dữ liệu sai định dạng
// được xử lý best-effort, không bao giờ trả về lỗi parse.
package csvio

import "strings"

// Bom là byte-order mark UTF-8, thêm vào đầu file export để
// spreadsheet hiển thị đúng nội dung tiếng Hàn.
const Bom = "\uFEFF"

// ParseDelimited tách văn bản CSV/TSV thô thành ma trận các ô.
//
// Quy tắc:
//   - Bỏ BOM ở đầu văn bản, chuẩn hóa CRLF/CR về LF
//   - Separator là tab nếu văn bản có chứa tab, ngược lại là dấu phẩy
//   - Quote theo RFC4180: quote đôi ("") là ký tự quote literal,
//     ô trong quote được chứa separator và xuống dòng
//   - Các dòng mà mọi ô đều rỗng/toàn khoảng trắng bị loại bỏ
func ParseDelimited(text string) [][]string {
	src := strings.TrimPrefix(text, Bom)
	src = strings.ReplaceAll(src, "\r\n", "\n")
	src = strings.ReplaceAll(src, "\r", "\n")

	sep := byte(',')
	if strings.ContainsRune(src, '\t') {
		sep = '\t'
	}

	var out [][]string
	var cur []string
	var cell strings.Builder
	inQuote := false

	for i := 0; i < len(src); i++ {
		ch := src[i]
		if ch == '"' {
			if inQuote && i+1 < len(src) && src[i+1] == '"' {
				cell.WriteByte('"')
				i++
			} else {
				inQuote = !inQuote
			}
			continue
		}
		if !inQuote && (ch == sep || ch == '\n') {
			cur = append(cur, cell.String())
			cell.Reset()
			if ch == '\n' {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cell.WriteByte(ch)
	}
	cur = append(cur, cell.String())
	out = append(out, cur)

	// Loại bỏ các dòng rỗng hoàn toàn
	rows := make([][]string, 0, len(out))
	for _, row := range out {
		if !isBlankRow(row) {
			rows = append(rows, row)
		}
	}
	return rows
}

// isBlankRow kiểm tra một dòng chỉ gồm các ô rỗng/khoảng trắng
func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
