package catalogsvc

import (
	"context"

	"moa_commerce/internal/api/catalog/models"
	"moa_commerce/internal/csvio"
)

// Export dựng nội dung CSV cho toàn bộ catalog, sắp theo thứ tự recency.
// Handler chịu trách nhiệm thêm BOM và header Content-Type khi trả response.
func (s *ProductService) Export(ctx context.Context) (string, error) {
	products, err := s.FetchAll(ctx)
	if err != nil {
		return "", err
	}
	SortProducts(products, SortRecency)

	records := make([]csvio.ExportRecord, 0, len(products))
	for _, p := range products {
		records = append(records, exportRecord(p))
	}
	return csvio.BuildCsv(records), nil
}

// ExportTemplate trả về file CSV chỉ có dòng tiêu đề, dùng làm mẫu nhập liệu
func (s *ProductService) ExportTemplate() string {
	return csvio.BuildCsv(nil)
}

func exportRecord(p models.Product) csvio.ExportRecord {
	return csvio.ExportRecord{
		ID:           p.ProductID,
		Name:         p.Name,
		NameEn:       p.NameEn,
		ProductCode:  p.ProductCode,
		Price:        p.Price,
		Rating:       p.Rating,
		ReviewCount:  p.ReviewCount,
		Views:        p.Views,
		Tags:         p.Tags,
		Link:         p.Link,
		ImageUrl:     p.ImageUrl,
		CategoryL1:   p.CategoryL1,
		CategoryL2:   p.CategoryL2,
		CategoryL1En: p.CategoryL1En,
		CategoryL2En: p.CategoryL2En,
	}
}
