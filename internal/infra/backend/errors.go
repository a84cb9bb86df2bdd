package backend

import (
	"errors"
	"fmt"
)

var (
	// バックエンドに到達できない
	ErrNetwork = errors.New("network error")

	// バックエンドが success:false / 非2xx を返した
	ErrApplication = errors.New("application error")

	// 対象が存在しない（404 / data:null）
	ErrNotFound = errors.New("not found")
)

// Errorはバックエンド呼び出しの失敗
// Kind は上の sentinel のどれか（errors.Is で判定する）
type Error struct {
	Kind    error
	Code    int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.Error()
}

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, code int, msg string) *Error {
	return &Error{Kind: kind, Code: code, Message: msg}
}

func networkError(err error) *Error {
	return newError(ErrNetwork, 0, fmt.Sprintf("Network error: %v", err))
}

// IsNotFoundは 404相当のとき true
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// AsErrorは *Error を取り出す
func AsError(err error) (*Error, bool) {
	var be *Error
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}
