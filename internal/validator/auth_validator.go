package validator

import (
	"strings"

	"storefront/internal/domain/model"
)

// ログイン・登録フォーム
var (
	Login    = NewSchema[model.LoginRequest]()
	Register = NewSchema[model.RegisterRequest]()
)

// NormalizeEmailは前後空白を落として小文字にする
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
