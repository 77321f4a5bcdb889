package catalogdto

// QueryInput là bộ lọc catalog gửi từ client.
// Seq là số thứ tự request do client cấp phát tăng dần, server echo lại
// nguyên vẹn để client chỉ áp kết quả của request mới nhất.
type QueryInput struct {
	Seq            int64    `json:"seq"`
	Query          string   `json:"query,omitempty" validate:"omitempty,max=200,no_xss"`
	CategoryL1     string   `json:"categoryL1,omitempty" validate:"omitempty,max=100"`
	CategoryL2     string   `json:"categoryL2,omitempty" validate:"omitempty,max=100"`
	TagQuery       string   `json:"tagQuery,omitempty" validate:"omitempty,max=300,no_xss"`
	ExcludeRestock bool     `json:"excludeRestock,omitempty"`
	OnlySaved      bool     `json:"onlySaved,omitempty"`
	FacetL1        []string `json:"facetL1,omitempty" validate:"omitempty,max=50,dive,max=100"`
	FacetMode      string   `json:"facetMode,omitempty" validate:"omitempty,oneof=include exclude"`
	Sort           string   `json:"sort,omitempty" validate:"omitempty,sort_key"`
	Page           int64    `json:"page,omitempty" validate:"omitempty,min=1"`
	Limit          int64    `json:"limit,omitempty" validate:"omitempty,min=1,max=500"`
}

// QueryResult là kết quả cho một lần lọc catalog
type QueryResult struct {
	Seq    int64            `json:"seq"`    // echo lại seq của request
	Total  int64            `json:"total"`  // tổng số sản phẩm trong catalog
	Shown  int64            `json:"shown"`  // số sản phẩm khớp bộ lọc
	Items  interface{}      `json:"items"`  // trang hiện tại của kết quả
	Facets map[string]int64 `json:"facets"` // số đếm theo category L1
}
