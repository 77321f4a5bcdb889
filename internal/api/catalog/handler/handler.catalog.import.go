package cataloghdl

import (
	"github.com/gofiber/fiber/v3"

	catalogdto "moa_commerce/internal/api/catalog/dto"
	catalogsvc "moa_commerce/internal/api/catalog/service"
	"moa_commerce/internal/csvio"
)

// HandlePreviewImport parse văn bản CSV và trả về thống kê xem trước
// (header chuẩn hóa, số dòng hợp lệ/bị loại, các dòng đầu) mà không ghi gì
func (h *ProductHandler) HandlePreviewImport(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input catalogdto.PreviewInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		sampleSize := input.SampleSize
		if sampleSize == 0 {
			sampleSize = 5
		}

		preview, err := h.productService.Preview(input.Text, sampleSize)
		h.HandleResponse(c, preview, err)
		return nil
	})
}

// HandleImport thực thi import CSV và trả về kết quả kèm tiến độ theo batch
func (h *ProductHandler) HandleImport(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input catalogdto.ImportInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.productService.Import(c.Context(), input.Text, catalogsvc.ImportOptions{
			Mode:              input.Mode,
			ReplaceTags:       input.ReplaceTags,
			ReplaceCategories: input.ReplaceCategories,
		})
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleExport trả về toàn bộ catalog dạng CSV, có BOM để mở thẳng
// bằng spreadsheet mà không vỡ tiếng Hàn
func (h *ProductHandler) HandleExport(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		content, err := h.productService.Export(c.Context())
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		c.Set("Content-Type", "text/csv; charset=utf-8")
		c.Set("Content-Disposition", `attachment; filename="catalog_export.csv"`)
		return c.SendString(csvio.Bom + content)
	})
}

// HandleExportTemplate trả về file CSV chỉ có dòng tiêu đề làm mẫu nhập liệu
func (h *ProductHandler) HandleExportTemplate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		c.Set("Content-Type", "text/csv; charset=utf-8")
		c.Set("Content-Disposition", `attachment; filename="catalog_template.csv"`)
		return c.SendString(csvio.Bom + h.productService.ExportTemplate())
	})
}
