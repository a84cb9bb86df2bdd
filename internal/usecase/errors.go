package usecase

import (
	"errors"
	"fmt"
	"net/http"

	"storefront/internal/infra/backend"
)

var (
	//401 トークンが無い・検証できない
	ErrAuthenticationRequired = errors.New("authentication required")
	//403 admin以外
	ErrForbidden = errors.New("forbidden")

	errSelfChange = errors.New("You cannot change your own account here")
)

// HTTPErrorは画面表示用（handlerがステータスに変える）
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// readErrorは参照系のエラーを画面向けにそろえる
func readError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrAuthenticationRequired):
		return err
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, "admin only")
	case errors.Is(err, backend.ErrNotFound):
		return NewHTTPError(http.StatusNotFound, "not found")
	case errors.Is(err, backend.ErrNetwork):
		return NewHTTPError(http.StatusBadGateway, "backend unavailable")
	default:
		if be, ok := backend.AsError(err); ok {
			return NewHTTPError(http.StatusBadGateway, be.Message)
		}
		return NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, backend.ErrNotFound)
}
