package catalogdto

// ImportInput là payload import CSV catalog
type ImportInput struct {
	Text              string `json:"text" validate:"required"`
	Mode              string `json:"mode,omitempty" validate:"omitempty,oneof=merge overwrite"`
	ReplaceTags       bool   `json:"replaceTags,omitempty"`
	ReplaceCategories bool   `json:"replaceCategories,omitempty"`
}

// PreviewInput là payload xem trước import, chỉ cần văn bản CSV
type PreviewInput struct {
	Text       string `json:"text" validate:"required"`
	SampleSize int    `json:"sampleSize,omitempty" validate:"omitempty,min=1,max=50"`
}
