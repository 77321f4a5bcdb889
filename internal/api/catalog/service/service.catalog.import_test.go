// Package catalogsvc - Test dựng write model cho import CSV.
package catalogsvc

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"moa_commerce/internal/csvio"
)

func strPtr(s string) *string { return &s }
func int64Ptr(v int64) *int64 { return &v }

// upsertParts bóc filter và hai phần $set/$setOnInsert từ write model
func upsertParts(t *testing.T, wm mongo.WriteModel) (filter bson.M, set bson.M, onInsert bson.M) {
	t.Helper()
	model, ok := wm.(*mongo.UpdateOneModel)
	if !ok {
		t.Fatalf("write model phải là UpdateOneModel, got %T", wm)
	}
	if model.Upsert == nil || !*model.Upsert {
		t.Fatal("write model phải bật upsert")
	}
	update, ok := model.Update.(bson.M)
	if !ok {
		t.Fatalf("update phải là bson.M, got %T", model.Update)
	}
	return model.Filter.(bson.M), update["$set"].(bson.M), update["$setOnInsert"].(bson.M)
}

func TestBuildUpsertModel_MergeSkipsAbsentFields(t *testing.T) {
	// Blue Box có ô price rỗng (Price nil): merge mode không được chạm
	// vào giá đã lưu
	row := &csvio.ProductRow{ID: "2", Name: strPtr("Blue Box")}
	filter, set, onInsert := upsertParts(t, buildUpsertModel(row, ImportOptions{Mode: ImportModeMerge}, 1000))

	if !reflect.DeepEqual(filter, bson.M{"productId": "2"}) {
		t.Errorf("filter phải khóa theo productId, got %v", filter)
	}
	if set["name"] != "Blue Box" || set["productId"] != "2" || set["updatedAt"] != int64(1000) {
		t.Errorf("$set thiếu trường có giá trị: %v", set)
	}
	if _, found := set["price"]; found {
		t.Error("merge mode không được set price khi ô nguồn rỗng")
	}
	if _, found := set["tags"]; found {
		t.Error("tags không được đụng tới khi replaceTags tắt")
	}
	if onInsert["createdAt"] != int64(1000) {
		t.Errorf("createdAt chỉ set khi insert, got %v", onInsert)
	}
}

func TestBuildUpsertModel_OverwriteZeroesBlanks(t *testing.T) {
	row := &csvio.ProductRow{ID: "2", Name: strPtr("Blue Box")}
	_, set, _ := upsertParts(t, buildUpsertModel(row, ImportOptions{Mode: ImportModeOverwrite}, 1000))

	if set["price"] != int64(0) {
		t.Errorf("overwrite mode phải đưa ô trống về 0, got %v", set["price"])
	}
	if set["nameEn"] != "" || set["status"] != "" {
		t.Errorf("overwrite mode phải đưa ô text trống về rỗng: %v", set)
	}
	if set["rating"] != float64(0) || set["restockable"] != false {
		t.Errorf("rating/restockable trống phải về zero value: %v", set)
	}
}

func TestBuildUpsertModel_ReplaceTagsGate(t *testing.T) {
	row := &csvio.ProductRow{ID: "1", Tags: []string{"kitchen", "mug"}}

	_, set, _ := upsertParts(t, buildUpsertModel(row, ImportOptions{Mode: ImportModeMerge}, 1))
	if _, found := set["tags"]; found {
		t.Error("toggle tắt thì tags trong CSV cũng bị bỏ qua")
	}

	_, set, _ = upsertParts(t, buildUpsertModel(row, ImportOptions{Mode: ImportModeMerge, ReplaceTags: true}, 1))
	if !reflect.DeepEqual(set["tags"], []string{"kitchen", "mug"}) {
		t.Errorf("toggle bật thì tags được thay, got %v", set["tags"])
	}

	// Overwrite + toggle bật + cột tags vắng mặt: về mảng rỗng
	empty := &csvio.ProductRow{ID: "1"}
	_, set, _ = upsertParts(t, buildUpsertModel(empty, ImportOptions{Mode: ImportModeOverwrite, ReplaceTags: true}, 1))
	if !reflect.DeepEqual(set["tags"], []string{}) {
		t.Errorf("overwrite + toggle bật + nguồn trống phải ra mảng rỗng, got %v", set["tags"])
	}
}

func TestBuildUpsertModel_ReplaceCategoriesGate(t *testing.T) {
	row := &csvio.ProductRow{ID: "1", CategoryL1: strPtr("주방"), CategoryL2: strPtr("조리도구")}

	_, set, _ := upsertParts(t, buildUpsertModel(row, ImportOptions{Mode: ImportModeMerge}, 1))
	if _, found := set["categoryL1"]; found {
		t.Error("toggle tắt thì categories bị bỏ qua")
	}

	_, set, _ = upsertParts(t, buildUpsertModel(row, ImportOptions{Mode: ImportModeMerge, ReplaceCategories: true}, 1))
	if set["categoryL1"] != "주방" || set["categoryL2"] != "조리도구" {
		t.Errorf("toggle bật thì categories được thay: %v", set)
	}
}

func TestBuildUpsertModel_NumericFieldsCarried(t *testing.T) {
	row := &csvio.ProductRow{
		ID:          "1",
		Price:       int64Ptr(9900),
		ReviewCount: int64Ptr(12000),
		Views:       int64Ptr(3000),
	}
	_, set, _ := upsertParts(t, buildUpsertModel(row, ImportOptions{Mode: ImportModeMerge}, 1))
	if set["price"] != int64(9900) || set["reviewCount"] != int64(12000) || set["views"] != int64(3000) {
		t.Errorf("trường số có giá trị phải được set: %v", set)
	}
}
