package catalogsvc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"moa_commerce/internal/common"
	"moa_commerce/internal/csvio"
	"moa_commerce/internal/global"
	"moa_commerce/internal/logger"
	"moa_commerce/internal/utility"
)

// Import mode
const (
	ImportModeMerge     = "merge"
	ImportModeOverwrite = "overwrite"
)

// ImportOptions điều khiển cách ghi dữ liệu import.
// Merge (mặc định): chỉ ghi trường có giá trị trong dòng nguồn.
// Overwrite: mọi trường được nhận diện đều bị thay thế, ô trống thành giá trị rỗng/0.
// Tags và categories luôn nằm sau hai toggle riêng để thao tác cập nhật giá
// hàng loạt không xóa mất tags đã chăm chút.
type ImportOptions struct {
	Mode              string
	ReplaceTags       bool
	ReplaceCategories bool
}

// ImportPreview là kết quả xem trước trước khi thực thi import
type ImportPreview struct {
	Headers   []string           `json:"headers"`   // header đã chuẩn hóa
	RowCount  int                `json:"rowCount"`  // số dòng hợp lệ
	Skipped   int                `json:"skipped"`   // số dòng bị loại do thiếu định danh
	SampleIDs []string           `json:"sampleIds"` // productId của các dòng đầu
	Rows      []*csvio.ProductRow `json:"rows"`     // các dòng đầu đã map
}

// BatchProgress ghi nhận tiến độ sau mỗi batch commit
type BatchProgress struct {
	Done  int `json:"done"`
	Total int `json:"total"`
}

// ImportResult là kết quả của một lần import
type ImportResult struct {
	BatchID   string          `json:"batchId"`   // mã lần import, dùng để trace log
	Total     int             `json:"total"`     // số dòng hợp lệ đưa vào ghi
	Skipped   int             `json:"skipped"`   // số dòng bị loại
	Committed int             `json:"committed"` // số dòng đã ghi thành công
	Upserted  int64           `json:"upserted"`  // số document tạo mới
	Modified  int64           `json:"modified"`  // số document cập nhật
	Progress  []BatchProgress `json:"progress"`  // tiến độ theo từng batch
}

// Preview parse và map văn bản CSV, trả về thống kê mà không ghi gì
func (s *ProductService) Preview(text string, sampleSize int) (*ImportPreview, error) {
	table := csvio.ParseDelimited(text)
	if len(table) == 0 {
		return nil, common.ErrCsvEmpty
	}
	if len(table) < 2 {
		return nil, common.ErrCsvNoHeader
	}

	rows, skipped := csvio.MapRows(table)

	if sampleSize <= 0 || sampleSize > len(rows) {
		sampleSize = len(rows)
	}
	sampleIDs := make([]string, 0, sampleSize)
	for _, r := range rows[:sampleSize] {
		sampleIDs = append(sampleIDs, r.ID)
	}

	return &ImportPreview{
		Headers:   csvio.NormalizeHeaders(table[0]),
		RowCount:  len(rows),
		Skipped:   skipped,
		SampleIDs: sampleIDs,
		Rows:      rows[:sampleSize],
	}, nil
}

// Import thực thi import CSV: parse, map, rồi ghi BulkWrite upsert theo productId
// theo từng batch tuần tự. Batch lỗi làm dừng các batch còn lại; các batch đã
// commit giữ nguyên (không rollback).
func (s *ProductService) Import(ctx context.Context, text string, opts ImportOptions) (*ImportResult, error) {
	table := csvio.ParseDelimited(text)
	if len(table) == 0 {
		return nil, common.ErrCsvEmpty
	}
	if len(table) < 2 {
		return nil, common.ErrCsvNoHeader
	}

	rows, skipped := csvio.MapRows(table)
	if len(rows) == 0 {
		return nil, common.ErrImportNoRows
	}

	if opts.Mode == "" {
		opts.Mode = ImportModeMerge
	}

	chunkSize := 400
	pause := 120 * time.Millisecond
	if global.MongoDB_ServerConfig != nil {
		if global.MongoDB_ServerConfig.ImportChunkSize > 0 {
			chunkSize = global.MongoDB_ServerConfig.ImportChunkSize
		}
		if global.MongoDB_ServerConfig.ImportChunkPause > 0 {
			pause = time.Duration(global.MongoDB_ServerConfig.ImportChunkPause) * time.Millisecond
		}
	}

	batchID := uuid.NewString()
	importLog := logger.GetImportLogger().WithField("batchId", batchID)
	importLog.WithFields(logrus.Fields{
		"rows":    len(rows),
		"skipped": skipped,
		"mode":    opts.Mode,
	}).Info("Bắt đầu import catalog")

	result := &ImportResult{BatchID: batchID, Total: len(rows), Skipped: skipped}
	now := utility.CurrentTimeInMilli()

	chunks := utility.Chunk(rows, chunkSize)
	for i, chunk := range chunks {
		writeModels := make([]mongo.WriteModel, 0, len(chunk))
		for _, row := range chunk {
			writeModels = append(writeModels, buildUpsertModel(row, opts, now))
		}

		// Tuần tự: batch N+1 chỉ chạy sau khi batch N commit xong
		bulkResult, err := s.BulkWrite(ctx, writeModels)
		if err != nil {
			importLog.WithFields(logrus.Fields{
				"batch":     i + 1,
				"committed": result.Committed,
				"total":     result.Total,
				"error":     err.Error(),
			}).Error("Batch import thất bại, dừng các batch còn lại")
			return result, common.NewError(
				common.ErrCodeBusinessImport,
				"Ghi batch import thất bại, các dòng đã commit vẫn được giữ",
				common.StatusInternalServerError,
				err,
			)
		}

		result.Committed += len(chunk)
		result.Upserted += bulkResult.UpsertedCount
		result.Modified += bulkResult.ModifiedCount
		result.Progress = append(result.Progress, BatchProgress{Done: result.Committed, Total: result.Total})

		importLog.WithFields(logrus.Fields{
			"batch": i + 1,
			"done":  result.Committed,
			"total": result.Total,
		}).Info("Batch import đã commit")

		// Nghỉ ngắn giữa các batch để không dồn tải lên database
		if i < len(chunks)-1 {
			time.Sleep(pause)
		}
	}

	return result, nil
}

// buildUpsertModel dựng write model upsert cho một dòng import.
// Merge mode chỉ set trường có giá trị; overwrite mode set đủ các trường
// nhận diện được (ô trống thành rỗng/0). Tags và categories qua toggle riêng.
func buildUpsertModel(row *csvio.ProductRow, opts ImportOptions, now int64) mongo.WriteModel {
	overwrite := opts.Mode == ImportModeOverwrite

	set := bson.M{
		"productId": row.ID,
		"updatedAt": now,
	}

	setStringField(set, "name", row.Name, overwrite)
	setStringField(set, "nameEn", row.NameEn, overwrite)
	setStringField(set, "productCode", row.ProductCode, overwrite)
	setStringField(set, "link", row.Link, overwrite)
	setStringField(set, "imageUrl", row.ImageUrl, overwrite)
	setStringField(set, "status", row.Status, overwrite)

	setInt64Field(set, "price", row.Price, overwrite)
	setInt64Field(set, "reviewCount", row.ReviewCount, overwrite)
	setInt64Field(set, "views", row.Views, overwrite)
	setInt64Field(set, "stock", row.Stock, overwrite)

	if row.Rating != nil {
		set["rating"] = *row.Rating
	} else if overwrite {
		set["rating"] = float64(0)
	}
	if row.Restockable != nil {
		set["restockable"] = *row.Restockable
	} else if overwrite {
		set["restockable"] = false
	}

	if opts.ReplaceTags {
		if row.Tags != nil {
			set["tags"] = row.Tags
		} else if overwrite {
			set["tags"] = []string{}
		}
	}

	if opts.ReplaceCategories {
		setStringField(set, "categoryL1", row.CategoryL1, overwrite)
		setStringField(set, "categoryL2", row.CategoryL2, overwrite)
		setStringField(set, "categoryL1En", row.CategoryL1En, overwrite)
		setStringField(set, "categoryL2En", row.CategoryL2En, overwrite)
	}

	return mongo.NewUpdateOneModel().
		SetFilter(bson.M{"productId": row.ID}).
		SetUpdate(bson.M{
			"$set":         set,
			"$setOnInsert": bson.M{"createdAt": now},
		}).
		SetUpsert(true)
}

func setStringField(set bson.M, key string, value *string, overwrite bool) {
	if value != nil {
		set[key] = *value
	} else if overwrite {
		set[key] = ""
	}
}

func setInt64Field(set bson.M, key string, value *int64, overwrite bool) {
	if value != nil {
		set[key] = *value
	} else if overwrite {
		set[key] = int64(0)
	}
}
