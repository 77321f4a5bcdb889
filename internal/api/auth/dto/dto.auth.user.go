// Package authdto - các DTO cho domain auth.
package authdto

// UserUpdateProfileInput dữ liệu cập nhật hồ sơ người dùng
type UserUpdateProfileInput struct {
	Name      string `json:"name,omitempty" validate:"omitempty,min=1,max=100,no_xss"`
	AvatarURL string `json:"avatarUrl,omitempty" validate:"omitempty,url"`
}
