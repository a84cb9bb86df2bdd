package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"storefront/internal/domain/model"
	"storefront/internal/validator"

	"github.com/sirupsen/logrus"
)

// 未ログインでactionを呼んだときの文言
const AuthRequiredMessage = "Authentication required. Please log in."

// Uploadはフォームのファイル（coerceでは触らない）
type Upload struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

// Fieldsはフォーム送信そのまま（key → string / number / Upload）
type Fields map[string]any

// Coerceは数値として読める文字列だけ float64 にする。
// Upload と Upload のスライスはそのまま。
func Coerce(in Fields) Fields {
	out := make(Fields, len(in))
	for k, v := range in {
		switch t := v.(type) {
		case Upload, *Upload, []Upload, []*Upload:
			out[k] = v
		case string:
			if strings.TrimSpace(t) == "" {
				out[k] = t
				continue
			}
			n, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
			if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
				out[k] = t
				continue
			}
			out[k] = n
		default:
			out[k] = v
		}
	}
	return out
}

// Stateはすべてのactionが返す形 {success, errors, data}
type State struct {
	Success bool                `json:"success"`
	Errors  map[string][]string `json:"errors"`
	Data    any                 `json:"data,omitempty"`

	// 成功時だけ入る。描画側のキャッシュを捨てるパス
	Stale []string `json:"-"`
}

func failed(errs map[string][]string) State {
	return State{Success: false, Errors: errs}
}

func generalError(msg string) State {
	return failed(validator.General(msg))
}

// Unauthenticatedは通信せずに返す失敗
func Unauthenticated() State {
	return failed(map[string][]string{"userId": {AuthRequiredMessage}})
}

// ActionObserverはaction結果の記録先（metrics）
type ActionObserver interface {
	ObserveAction(action, result string)
}

// Actionsは RunAction が使うロガーと記録先
type Actions struct {
	Log      logrus.FieldLogger
	Observer ActionObserver
}

func NewActions(log logrus.FieldLogger, obs ActionObserver) *Actions {
	return &Actions{Log: orDiscard(log), Observer: obs}
}

func orDiscard(log logrus.FieldLogger) logrus.FieldLogger {
	if log != nil {
		return log
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func (a *Actions) observe(name, result string) {
	if a.Observer != nil {
		a.Observer.ObserveAction(name, result)
	}
}

// RunActionは coerce → schema検証 → op → 無効化パス の順に実行する。
// 検証に失敗したら op は呼ばない。エラーもpanicも State に畳む。
func RunAction[T, R any](
	ctx context.Context,
	a *Actions,
	name string,
	raw Fields,
	schema *validator.Schema[T],
	op func(ctx context.Context, in T) (R, error),
	stale ...string,
) (st State) {
	defer func() {
		if r := recover(); r != nil {
			a.Log.WithFields(logrus.Fields{
				"action": name,
				"panic":  r,
			}).Error("action panic")
			a.observe(name, "error")
			st = generalError(fmt.Sprint(r))
		}
	}()

	in, errs := schema.ParseForm(raw, Coerce(raw))
	if errs != nil {
		a.Log.WithFields(logrus.Fields{
			"action": name,
			"errors": errs,
		}).Warn("validation errors")
		a.observe(name, "invalid")
		return failed(errs)
	}

	data, err := op(ctx, in)
	if err != nil {
		if errors.Is(err, ErrAuthenticationRequired) {
			a.observe(name, "unauthenticated")
			return Unauthenticated()
		}
		a.Log.WithFields(logrus.Fields{
			"action": name,
		}).WithError(err).Error("action error")
		a.observe(name, "error")
		return generalError(err.Error())
	}

	a.observe(name, "success")
	return State{
		Success: true,
		Errors:  map[string][]string{},
		Data:    data,
		Stale:   append([]string(nil), stale...),
	}
}

// authorizeは ownership が要る action の入口（通信前に弾く）
func authorize(name string, a *Actions, id model.Identity) (State, bool) {
	if !id.IsAuthenticated() {
		a.observe(name, "unauthenticated")
		return Unauthenticated(), false
	}
	return State{}, true
}

// authorizeAdminは admin 用 action の入口
func authorizeAdmin(name string, a *Actions, id model.Identity) (State, bool) {
	if st, ok := authorize(name, a, id); !ok {
		return st, false
	}
	if !id.IsAdmin() {
		a.observe(name, "forbidden")
		return generalError("Admin access required"), false
	}
	return State{}, true
}
