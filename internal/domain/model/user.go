package model

import "strings"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRoleは "ROLE_ADMIN" / "ADMIN" / "admin" を受け付ける
func ParseRole(s string) (Role, bool) {
	switch normalizeRole(s) {
	case "user":
		return RoleUser, true
	case "admin":
		return RoleAdmin, true
	default:
		return "", false
	}
}

func normalizeRole(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 5 && strings.EqualFold(s[:5], "ROLE_") {
		s = s[5:]
	}
	return strings.ToLower(s)
}

type User struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

type UserCreateRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserUpdateRequest struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  Role   `json:"role,omitempty"`
}

// プロフィール（/users/{id}/profile）
type Profile struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ProfileUpdateRequest struct {
	Name  string `json:"name" mod:"trim" validate:"required" msg:"Name is required"`
	Email string `json:"email" mod:"trim" validate:"required,email" msg:"Invalid email address"`
}

// 呼び出し元ユーザー（署名付きトークンから解決したもの）
type Identity struct {
	UserID int64
	Name   string
	Email  string
	Role   Role
	Token  string
}

// IsAuthenticatedはトークンからユーザーが解決できたとき true
func (i Identity) IsAuthenticated() bool {
	return i.UserID > 0
}

func (i Identity) IsAdmin() bool {
	return i.IsAuthenticated() && i.Role == RoleAdmin
}

// 管理画面のユーザー操作
type UserRoleRequest struct {
	ID   int64 `json:"id" validate:"gt=0" msg:"User ID is required"`
	Role Role  `json:"role" validate:"oneof=user admin" msg:"Invalid role"`
}

type UserIDRequest struct {
	ID int64 `json:"id" validate:"gt=0" msg:"User ID is required"`
}
