package catalogsvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"moa_commerce/internal/common"
	"moa_commerce/internal/csvio"
	"moa_commerce/internal/utility"
)

// BulkResult là kết quả của một thao tác hàng loạt trên catalog
type BulkResult struct {
	Modified int64 `json:"modified"`
	Deleted  int64 `json:"deleted"`
}

// AddTags gắn thêm các tag (đã tokenize, lowercase, dedupe) vào
// những sản phẩm được chọn. Dùng $addToSet nên gắn lặp lại vô hại.
func (s *ProductService) AddTags(ctx context.Context, productIDs []string, tagInput string) (*BulkResult, error) {
	ids := utility.Unique(productIDs)
	if len(ids) == 0 {
		return nil, common.ErrEmptySelection
	}
	tokens := csvio.TokenizeTags(tagInput)
	if len(tokens) == 0 {
		return nil, common.NewError(common.ErrCodeValidationInput, "Không có tag hợp lệ nào để gắn", common.StatusBadRequest, nil)
	}

	modified, err := s.UpdateMany(ctx,
		bson.M{"productId": bson.M{"$in": ids}},
		bson.M{"$addToSet": bson.M{"tags": bson.M{"$each": tokens}}},
		nil,
	)
	if err != nil {
		return nil, err
	}
	return &BulkResult{Modified: modified}, nil
}

// RemoveTags gỡ các tag khỏi những sản phẩm được chọn bằng $pull
func (s *ProductService) RemoveTags(ctx context.Context, productIDs []string, tagInput string) (*BulkResult, error) {
	ids := utility.Unique(productIDs)
	if len(ids) == 0 {
		return nil, common.ErrEmptySelection
	}
	tokens := csvio.TokenizeTags(tagInput)
	if len(tokens) == 0 {
		return nil, common.NewError(common.ErrCodeValidationInput, "Không có tag hợp lệ nào để gỡ", common.StatusBadRequest, nil)
	}

	modified, err := s.UpdateMany(ctx,
		bson.M{"productId": bson.M{"$in": ids}},
		bson.M{"$pull": bson.M{"tags": bson.M{"$in": tokens}}},
		nil,
	)
	if err != nil {
		return nil, err
	}
	return &BulkResult{Modified: modified}, nil
}

// AssignCategory gán cặp nhãn L1/L2 cho những sản phẩm được chọn.
// Cặp nhãn phải có trong từ điển; nhãn tiếng Anh được tra và gán kèm.
func (s *ProductService) AssignCategory(ctx context.Context, categories *CategoryService, productIDs []string, labelL1 string, labelL2 string) (*BulkResult, error) {
	ids := utility.Unique(productIDs)
	if len(ids) == 0 {
		return nil, common.ErrEmptySelection
	}
	if err := categories.ValidatePair(ctx, labelL1, labelL2); err != nil {
		return nil, err
	}
	l1En, l2En := categories.LabelEnPair(ctx, labelL1, labelL2)

	modified, err := s.UpdateMany(ctx,
		bson.M{"productId": bson.M{"$in": ids}},
		bson.M{"$set": bson.M{
			"categoryL1":   labelL1,
			"categoryL2":   labelL2,
			"categoryL1En": l1En,
			"categoryL2En": l2En,
		}},
		nil,
	)
	if err != nil {
		return nil, err
	}
	return &BulkResult{Modified: modified}, nil
}

// BulkDelete xóa các sản phẩm được chọn theo từng lô để tránh
// một lệnh $in quá lớn. Lô lỗi làm dừng các lô sau.
func (s *ProductService) BulkDelete(ctx context.Context, productIDs []string) (*BulkResult, error) {
	ids := utility.Unique(productIDs)
	if len(ids) == 0 {
		return nil, common.ErrEmptySelection
	}

	result := &BulkResult{}
	for _, chunk := range utility.Chunk(ids, bulkDeleteChunkSize) {
		deleted, err := s.DeleteMany(ctx, bson.M{"productId": bson.M{"$in": chunk}})
		if err != nil {
			return result, err
		}
		result.Deleted += deleted
	}
	return result, nil
}

const bulkDeleteChunkSize = 100
