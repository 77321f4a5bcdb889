// Package cataloghdl xử lý các request về catalog sản phẩm:
// lọc/tìm kiếm, import/export CSV, thao tác tag/category hàng loạt.
package cataloghdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "moa_commerce/internal/api/base/handler"
	catalogdto "moa_commerce/internal/api/catalog/dto"
	"moa_commerce/internal/api/catalog/models"
	catalogsvc "moa_commerce/internal/api/catalog/service"
	savedsvc "moa_commerce/internal/api/saved/service"
)

// ProductHandler xử lý các request về sản phẩm catalog
type ProductHandler struct {
	*basehdl.BaseHandler[models.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput]
	productService  *catalogsvc.ProductService
	categoryService *catalogsvc.CategoryService
	savedService    *savedsvc.SavedItemService
}

// NewProductHandler tạo instance mới của ProductHandler
func NewProductHandler() (*ProductHandler, error) {
	productService, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %v", err)
	}
	categoryService, err := catalogsvc.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %v", err)
	}
	savedService, err := savedsvc.NewSavedItemService()
	if err != nil {
		return nil, fmt.Errorf("failed to create saved item service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[models.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput](productService)
	return &ProductHandler{
		BaseHandler:     baseHandler,
		productService:  productService,
		categoryService: categoryService,
		savedService:    savedService,
	}, nil
}

// HandleQuery chạy bộ lọc catalog trên toàn bộ sản phẩm và trả về
// trang kết quả kèm facet theo category L1. Seq của request được echo
// lại nguyên vẹn để client áp đúng kết quả mới nhất.
func (h *ProductHandler) HandleQuery(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input catalogdto.QueryInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Người dùng vắng mặt (route công khai) thì userID là zero,
		// tập đã lưu nil và toggle OnlySaved bị vô hiệu
		var userID primitive.ObjectID
		if raw, ok := c.Locals("user_id").(string); ok && raw != "" {
			if objID, err := primitive.ObjectIDFromHex(raw); err == nil {
				userID = objID
			}
		}

		filter := catalogsvc.Filter{
			Query:          input.Query,
			CategoryL1:     input.CategoryL1,
			CategoryL2:     input.CategoryL2,
			TagQuery:       input.TagQuery,
			ExcludeRestock: input.ExcludeRestock,
			OnlySaved:      input.OnlySaved,
			FacetL1:        input.FacetL1,
			FacetMode:      input.FacetMode,
		}
		if input.OnlySaved {
			savedSet, err := h.savedService.IDSet(c.Context(), userID)
			if err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
			filter.SavedIDs = savedSet
		}

		products, err := h.productService.FetchAll(c.Context())
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		visible := catalogsvc.Apply(products, &filter, input.Sort)
		facets := catalogsvc.FacetCountsL1(products, &filter)

		page := input.Page
		if page < 1 {
			page = 1
		}
		limit := input.Limit
		if limit < 1 {
			limit = 120
		}
		start := (page - 1) * limit
		if start > int64(len(visible)) {
			start = int64(len(visible))
		}
		end := start + limit
		if end > int64(len(visible)) {
			end = int64(len(visible))
		}

		result := catalogdto.QueryResult{
			Seq:    input.Seq,
			Total:  int64(len(products)),
			Shown:  int64(len(visible)),
			Items:  visible[start:end],
			Facets: facets,
		}
		h.HandleResponse(c, result, nil)
		return nil
	})
}

// HandleFindByProductID tra cứu một sản phẩm theo productId (khóa ngoài
// ổn định dùng trong CSV và link chia sẻ)
func (h *ProductHandler) HandleFindByProductID(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		productID := c.Params("productId")
		product, err := h.productService.FindByProductID(c.Context(), productID)
		h.HandleResponse(c, product, err)
		return nil
	})
}

// HandleListCategories trả về từ điển phân loại hai cấp
func (h *ProductHandler) HandleListCategories(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		categories, err := h.categoryService.List(c.Context())
		h.HandleResponse(c, categories, err)
		return nil
	})
}
