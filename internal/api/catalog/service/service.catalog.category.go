package catalogsvc

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"moa_commerce/internal/api/catalog/models"
	basesvc "moa_commerce/internal/api/base/service"
	"moa_commerce/internal/common"
	"moa_commerce/internal/global"
	"moa_commerce/internal/utility"
)

// CategoryService quản lý từ điển phân loại hai cấp.
// Danh tính category (key) tách khỏi nhãn hiển thị (labelKo/labelEn):
// sản phẩm lưu nhãn tiếng Hàn, còn từ điển trả lời key nào hợp lệ
// và nhãn nào dùng cho ngôn ngữ nào.
type CategoryService struct {
	*basesvc.BaseServiceMongoImpl[models.Category]
	cache *utility.Cache
}

const categoryCacheKey = "catalog_categories:all"

// NewCategoryService tạo service mới cho từ điển category
func NewCategoryService() (*CategoryService, error) {
	col, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Categories)
	if !exist {
		return nil, common.NewError(
			common.ErrCodeDatabaseConnection,
			"Không tìm thấy collection "+global.MongoDB_ColNames.Categories,
			common.StatusInternalServerError,
			nil,
		)
	}
	return &CategoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Category](col),
		cache:                utility.NewCache(10*time.Minute, 30*time.Minute),
	}, nil
}

// List trả về toàn bộ từ điển theo sortOrder, có cache in-memory
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	if cached, found := s.cache.Get(categoryCacheKey); found {
		if cats, ok := cached.([]models.Category); ok {
			return cats, nil
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "sortOrder", Value: 1}, {Key: "key", Value: 1}})
	cats, err := s.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	s.cache.Set(categoryCacheKey, cats)
	return cats, nil
}

// ListChildren trả về các category con trực tiếp của parentKey
// (parentKey rỗng nghĩa là cấp L1)
func (s *CategoryService) ListChildren(ctx context.Context, parentKey string) ([]models.Category, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	children := make([]models.Category, 0)
	for _, c := range all {
		if c.ParentKey == parentKey {
			children = append(children, c)
		}
	}
	return children, nil
}

// ValidatePair kiểm tra cặp nhãn L1/L2 (tiếng Hàn) có tồn tại trong từ điển
// và L2 có đúng là con của L1 hay không. L2 rỗng thì chỉ kiểm tra L1.
func (s *CategoryService) ValidatePair(ctx context.Context, labelL1 string, labelL2 string) error {
	all, err := s.List(ctx)
	if err != nil {
		return err
	}

	var parent *models.Category
	for i, c := range all {
		if c.ParentKey == "" && c.LabelKo == labelL1 {
			parent = &all[i]
			break
		}
	}
	if parent == nil {
		return common.NewError(
			common.ErrCodeValidationInput,
			"Category L1 không có trong từ điển: "+labelL1,
			common.StatusBadRequest,
			nil,
		)
	}
	if labelL2 == "" {
		return nil
	}
	for _, c := range all {
		if c.ParentKey == parent.Key && c.LabelKo == labelL2 {
			return nil
		}
	}
	return common.NewError(
		common.ErrCodeValidationInput,
		"Category L2 không thuộc L1 đã chọn: "+labelL2,
		common.StatusBadRequest,
		nil,
	)
}

// LabelEnPair tra nhãn tiếng Anh tương ứng cho cặp nhãn tiếng Hàn.
// Không tìm thấy thì trả về chuỗi rỗng cho phần thiếu.
func (s *CategoryService) LabelEnPair(ctx context.Context, labelL1 string, labelL2 string) (string, string) {
	all, err := s.List(ctx)
	if err != nil {
		return "", ""
	}

	var l1En, l2En, parentKey string
	for _, c := range all {
		if c.ParentKey == "" && c.LabelKo == labelL1 {
			l1En = c.LabelEn
			parentKey = c.Key
			break
		}
	}
	if parentKey != "" && labelL2 != "" {
		for _, c := range all {
			if c.ParentKey == parentKey && c.LabelKo == labelL2 {
				l2En = c.LabelEn
				break
			}
		}
	}
	return l1En, l2En
}

// Seed nạp từ điển cố định vào collection nếu chưa có, idempotent theo key
func (s *CategoryService) Seed(ctx context.Context) error {
	writeModels := make([]mongo.WriteModel, 0, len(categorySeed))
	now := utility.CurrentTimeInMilli()
	for _, c := range categorySeed {
		writeModels = append(writeModels, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"key": c.Key}).
			SetUpdate(bson.M{
				"$set": bson.M{
					"parentKey": c.ParentKey,
					"labelKo":   c.LabelKo,
					"labelEn":   c.LabelEn,
					"sortOrder": c.SortOrder,
					"updatedAt": now,
				},
				"$setOnInsert": bson.M{"key": c.Key, "createdAt": now},
			}).
			SetUpsert(true))
	}
	_, err := s.BulkWrite(ctx, writeModels)
	if err == nil {
		s.cache.Delete(categoryCacheKey)
	}
	return err
}

// categorySeed là từ điển phân loại hai cấp cố định.
// Key là định danh chuẩn, nhãn tiếng Hàn là giá trị lưu trên sản phẩm.
var categorySeed = []models.Category{
	{Key: "home_cleaning", LabelKo: "청소/욕실", LabelEn: "Cleaning/Bath", SortOrder: 1},
	{Key: "home_cleaning.detergents_brushes", ParentKey: "home_cleaning", LabelKo: "청소용품(세제/브러시)", LabelEn: "Cleaning Supplies (Detergent/Brush)", SortOrder: 1},
	{Key: "home_cleaning.laundry_racks", ParentKey: "home_cleaning", LabelKo: "세탁용품(세탁망/건조대)", LabelEn: "Laundry Supplies (Nets/Racks)", SortOrder: 2},
	{Key: "home_cleaning.bath_mats_towels", ParentKey: "home_cleaning", LabelKo: "욕실용품(매트/타월)", LabelEn: "Bathroom Items (Mat/Towel)", SortOrder: 3},
	{Key: "home_cleaning.trash_recycle", ParentKey: "home_cleaning", LabelKo: "쓰레기통/분리수거함", LabelEn: "Trash/Recycle Bins", SortOrder: 4},

	{Key: "storage", LabelKo: "수납/정리", LabelEn: "Storage/Organization", SortOrder: 2},
	{Key: "storage.boxes_baskets", ParentKey: "storage", LabelKo: "수납박스/바구니", LabelEn: "Storage Boxes/Baskets", SortOrder: 1},
	{Key: "storage.living_boxes", ParentKey: "storage", LabelKo: "리빙박스/정리함", LabelEn: "Living Boxes/Organizers", SortOrder: 2},
	{Key: "storage.slim_storage", ParentKey: "storage", LabelKo: "틈새수납", LabelEn: "Slim Storage", SortOrder: 3},
	{Key: "storage.hangers_shelves", ParentKey: "storage", LabelKo: "옷걸이/선반", LabelEn: "Hangers/Shelves", SortOrder: 4},
	{Key: "storage.kitchen_storage", ParentKey: "storage", LabelKo: "주방수납", LabelEn: "Kitchen Storage", SortOrder: 5},
	{Key: "storage.fridge_organization", ParentKey: "storage", LabelKo: "냉장고정리", LabelEn: "Fridge Organization", SortOrder: 6},

	{Key: "kitchen", LabelKo: "주방", LabelEn: "Kitchenware", SortOrder: 3},
	{Key: "kitchen.tableware", ParentKey: "kitchen", LabelKo: "식기(접시/그릇)", LabelEn: "Tableware (Plates/Bowls)", SortOrder: 1},
	{Key: "kitchen.cups_bottles", ParentKey: "kitchen", LabelKo: "컵/물병/텀블러", LabelEn: "Cups/Bottles/Tumblers", SortOrder: 2},
	{Key: "kitchen.food_containers", ParentKey: "kitchen", LabelKo: "밀폐용기", LabelEn: "Food Containers", SortOrder: 3},
	{Key: "kitchen.cooking_tools", ParentKey: "kitchen", LabelKo: "조리도구(칼/가위)", LabelEn: "Cooking Tools (Knife/Scissors)", SortOrder: 4},
	{Key: "kitchen.kitchen_sundries", ParentKey: "kitchen", LabelKo: "주방잡화(행주/수세미)", LabelEn: "Kitchen Sundries (Cloth/Sponge)", SortOrder: 5},

	{Key: "stationery", LabelKo: "문구/팬시", LabelEn: "Stationery/Fancy", SortOrder: 4},
	{Key: "stationery.pens_notebooks", ParentKey: "stationery", LabelKo: "필기구/노트", LabelEn: "Pens/Notebooks", SortOrder: 1},
	{Key: "stationery.office_supplies", ParentKey: "stationery", LabelKo: "사무용품(파일/서류)", LabelEn: "Office Supplies (Files/Docs)", SortOrder: 2},
	{Key: "stationery.packing_materials", ParentKey: "stationery", LabelKo: "포장재료", LabelEn: "Packing Materials", SortOrder: 3},
	{Key: "stationery.design_stationery", ParentKey: "stationery", LabelKo: "디자인문구", LabelEn: "Design Stationery", SortOrder: 4},
	{Key: "stationery.electronic_accessories", ParentKey: "stationery", LabelKo: "전자문구", LabelEn: "Electronic Accessories", SortOrder: 5},

	{Key: "beauty_hygiene", LabelKo: "뷰티/위생", LabelEn: "Beauty/Hygiene", SortOrder: 5},
	{Key: "beauty_hygiene.skin_body", ParentKey: "beauty_hygiene", LabelKo: "스킨/바디케어", LabelEn: "Skin/Body Care", SortOrder: 1},
	{Key: "beauty_hygiene.sheet_masks", ParentKey: "beauty_hygiene", LabelKo: "마스크팩", LabelEn: "Sheet Masks", SortOrder: 2},
	{Key: "beauty_hygiene.makeup_tools", ParentKey: "beauty_hygiene", LabelKo: "메이크업도구(브러시)", LabelEn: "Makeup Tools (Brushes)", SortOrder: 3},
	{Key: "beauty_hygiene.makeup", ParentKey: "beauty_hygiene", LabelKo: "메이크업", LabelEn: "Makeup", SortOrder: 4},
	{Key: "beauty_hygiene.hygiene", ParentKey: "beauty_hygiene", LabelKo: "위생용품(마스크/밴드)", LabelEn: "Hygiene (Masks/Bandages)", SortOrder: 5},

	{Key: "fashion", LabelKo: "패션/잡화", LabelEn: "Fashion/Accessories", SortOrder: 6},
	{Key: "fashion.clothing_underwear", ParentKey: "fashion", LabelKo: "의류/속옷", LabelEn: "Clothing/Underwear", SortOrder: 1},
	{Key: "fashion.bags_pouches", ParentKey: "fashion", LabelKo: "가방/파우치", LabelEn: "Bags/Pouches", SortOrder: 2},
	{Key: "fashion.socks_stockings", ParentKey: "fashion", LabelKo: "양말/스타킹", LabelEn: "Socks/Stockings", SortOrder: 3},
	{Key: "fashion.accessories", ParentKey: "fashion", LabelKo: "패션소품", LabelEn: "Fashion Accessories", SortOrder: 4},
	{Key: "fashion.shoe_care", ParentKey: "fashion", LabelKo: "신발관리", LabelEn: "Shoe Care", SortOrder: 5},

	{Key: "interior_garden", LabelKo: "인테리어/원예", LabelEn: "Interior/Gardening", SortOrder: 7},
	{Key: "interior_garden.home_decor", ParentKey: "interior_garden", LabelKo: "홈데코(쿠션/커튼)", LabelEn: "Home Decor (Cushion/Curtain)", SortOrder: 1},
	{Key: "interior_garden.frames_clocks", ParentKey: "interior_garden", LabelKo: "액자/시계", LabelEn: "Frames/Clocks", SortOrder: 2},
	{Key: "interior_garden.gardening", ParentKey: "interior_garden", LabelKo: "원예(화분/씨앗)", LabelEn: "Gardening (Pots/Seeds)", SortOrder: 3},
	{Key: "interior_garden.lighting", ParentKey: "interior_garden", LabelKo: "조명", LabelEn: "Lighting", SortOrder: 4},
	{Key: "interior_garden.seasonal_decor", ParentKey: "interior_garden", LabelKo: "시즌데코", LabelEn: "Seasonal Decor", SortOrder: 5},

	{Key: "tools_digital", LabelKo: "공구/디지털", LabelEn: "Tools/Digital", SortOrder: 8},
	{Key: "tools_digital.tools_safety", ParentKey: "tools_digital", LabelKo: "공구/안전용품", LabelEn: "Tools/Safety", SortOrder: 1},
	{Key: "tools_digital.car_bike", ParentKey: "tools_digital", LabelKo: "자동차/자전거용품", LabelEn: "Car/Bike Accessories", SortOrder: 2},
	{Key: "tools_digital.digital_accessories", ParentKey: "tools_digital", LabelKo: "디지털소품(케이블/충전기)", LabelEn: "Digital Accessories (Cables/Chargers)", SortOrder: 3},
	{Key: "tools_digital.batteries", ParentKey: "tools_digital", LabelKo: "건전지", LabelEn: "Batteries", SortOrder: 4},

	{Key: "sports_leisure_hobby", LabelKo: "스포츠/레저/취미", LabelEn: "Sports/Leisure/Hobby", SortOrder: 9},
	{Key: "sports_leisure_hobby.camping_travel", ParentKey: "sports_leisure_hobby", LabelKo: "캠핑/여행", LabelEn: "Camping/Travel", SortOrder: 1},
	{Key: "sports_leisure_hobby.sports_fitness", ParentKey: "sports_leisure_hobby", LabelKo: "스포츠/피트니스", LabelEn: "Sports/Fitness", SortOrder: 2},
	{Key: "sports_leisure_hobby.diy_hobbies", ParentKey: "sports_leisure_hobby", LabelKo: "DIY/취미", LabelEn: "DIY/Hobbies", SortOrder: 3},
	{Key: "sports_leisure_hobby.knitting_crafts", ParentKey: "sports_leisure_hobby", LabelKo: "뜨개질/공예", LabelEn: "Knitting/Crafts", SortOrder: 4},
	{Key: "sports_leisure_hobby.pet_supplies", ParentKey: "sports_leisure_hobby", LabelKo: "반려동물용품", LabelEn: "Pet Supplies", SortOrder: 5},

	{Key: "food", LabelKo: "식품", LabelEn: "Food", SortOrder: 10},
	{Key: "food.snacks_chocolate", ParentKey: "food", LabelKo: "과자/초콜릿", LabelEn: "Snacks/Chocolate", SortOrder: 1},
	{Key: "food.drinks_juice", ParentKey: "food", LabelKo: "음료/주스", LabelEn: "Drinks/Juice", SortOrder: 2},
	{Key: "food.ramen_instant", ParentKey: "food", LabelKo: "라면/간편식", LabelEn: "Ramen/Instant", SortOrder: 3},
	{Key: "food.health_foods", ParentKey: "food", LabelKo: "건강식품", LabelEn: "Health Foods", SortOrder: 4},
	{Key: "food.nuts", ParentKey: "food", LabelKo: "견과류", LabelEn: "Nuts", SortOrder: 5},

	{Key: "baby_toys", LabelKo: "유아/완구", LabelEn: "Kids/Toys", SortOrder: 11},
	{Key: "baby_toys.kids_baby", ParentKey: "baby_toys", LabelKo: "유아동용품", LabelEn: "Kids/Baby Items", SortOrder: 1},
	{Key: "baby_toys.toys", ParentKey: "baby_toys", LabelKo: "완구/장난감", LabelEn: "Toys", SortOrder: 2},
	{Key: "baby_toys.education", ParentKey: "baby_toys", LabelKo: "교육/학습", LabelEn: "Education/Learning", SortOrder: 3},

	{Key: "seasonal_series", LabelKo: "시즌/시리즈", LabelEn: "Season/Series", SortOrder: 12},
	{Key: "seasonal_series.spring_summer", ParentKey: "seasonal_series", LabelKo: "봄/여름기획", LabelEn: "Spring/Summer Plans", SortOrder: 1},
	{Key: "seasonal_series.traditional", ParentKey: "seasonal_series", LabelKo: "전통 시리즈", LabelEn: "Traditional Series", SortOrder: 2},
	{Key: "seasonal_series.character_collab", ParentKey: "seasonal_series", LabelKo: "캐릭터콜라보", LabelEn: "Character Collab", SortOrder: 3},

	{Key: "best_new", LabelKo: "베스트/신상품", LabelEn: "Best/New", SortOrder: 13},
	{Key: "best_new.top_sellers", ParentKey: "best_new", LabelKo: "베스트셀러", LabelEn: "Top Sellers", SortOrder: 1},
	{Key: "best_new.new_arrivals", ParentKey: "best_new", LabelKo: "신상품", LabelEn: "New Arrivals", SortOrder: 2},
}
