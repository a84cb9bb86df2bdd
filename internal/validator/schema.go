package validator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	playground "github.com/go-playground/validator/v10"
)

// GeneralKeyはフィールドに紐付かないエラーのキー
const GeneralKey = "general"

// FieldErrorsはフィールド名（JSON名）→メッセージ一覧
type FieldErrors map[string][]string

func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// General は general キーだけを持つエラーを作る
func General(msg string) FieldErrors {
	return FieldErrors{GeneralKey: {msg}}
}

var validate = newValidate()

func newValidate() *playground.Validate {
	v := playground.New()
	// エラーのキーはJSON名に寄せる
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// Schemaは入力（coerce済みのフラットなmap）を T に読み込み、タグで検証する。
// mod:"trim" のフィールドは検証前に前後の空白を落とす
type Schema[T any] struct {
	kinds map[string]reflect.Kind
	msgs  map[string]string
	trims map[string]bool
}

func NewSchema[T any]() *Schema[T] {
	s := &Schema[T]{
		kinds: map[string]reflect.Kind{},
		msgs:  map[string]string{},
		trims: map[string]bool{},
	}
	var zero T
	collectFields(reflect.TypeOf(zero), s)
	return s
}

func collectFields[T any](t reflect.Type, s *Schema[T]) {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			continue
		}
		if f.Anonymous && name == "" {
			collectFields(f.Type, s)
			continue
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}
		ft := f.Type
		for ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		s.kinds[name] = ft.Kind()
		if m := f.Tag.Get("msg"); m != "" {
			s.msgs[name] = m
		}
		if f.Tag.Get("mod") == "trim" {
			s.trims[name] = true
		}
	}
}

// Parseは成功時に T を返す。失敗時は FieldErrors（空でない）を返す。
func (s *Schema[T]) Parse(fields map[string]any) (T, FieldErrors) {
	return s.ParseForm(fields, fields)
}

// ParseFormは coerce 前の raw も受け取る。
// 文字列フィールドは raw の文字列を使う（"02134" や長いIDを数値経由で壊さない）
func (s *Schema[T]) ParseForm(raw, coerced map[string]any) (T, FieldErrors) {
	var out T
	errs := FieldErrors{}

	b, err := json.Marshal(s.adjust(raw, coerced))
	if err != nil {
		return out, General(err.Error())
	}

	if err := json.NewDecoder(bytes.NewReader(b)).Decode(&out); err != nil {
		var te *json.UnmarshalTypeError
		if !errors.As(err, &te) {
			return out, General(err.Error())
		}
		field := te.Field
		if i := strings.LastIndex(field, "."); i >= 0 {
			field = field[i+1:]
		}
		errs.Add(field, fmt.Sprintf("Expected %s, received %s", kindName(te.Type), te.Value))
	}

	if err := validate.Struct(out); err != nil {
		var ves playground.ValidationErrors
		if !errors.As(err, &ves) {
			return out, General(err.Error())
		}
		for _, fe := range ves {
			name := fe.Field()
			if _, done := errs[name]; done {
				continue
			}
			if m, ok := s.msgs[name]; ok {
				errs.Add(name, m)
				continue
			}
			errs.Add(name, defaultMessage(fe))
		}
	}

	if len(errs) > 0 {
		return out, errs
	}
	return out, nil
}

// 数値化された値を文字列フィールドへ戻す／チェックボックスをboolにする
func (s *Schema[T]) adjust(raw, fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		switch s.kinds[k] {
		case reflect.String:
			if str, ok := raw[k].(string); ok {
				switch v.(type) {
				case string:
					v = str
				default:
					// coerce は前後の空白を落として数値にしている
					v = strings.TrimSpace(str)
				}
			}
			if str, ok := v.(string); ok && s.trims[k] {
				v = strings.TrimSpace(str)
			}
			switch n := v.(type) {
			case float64:
				v = strconv.FormatFloat(n, 'f', -1, 64)
			case int:
				v = strconv.Itoa(n)
			case int64:
				v = strconv.FormatInt(n, 10)
			}
		case reflect.Bool:
			switch x := v.(type) {
			case string:
				switch strings.ToLower(strings.TrimSpace(x)) {
				case "on", "true", "yes":
					v = true
				case "", "off", "false", "no":
					v = false
				}
			case float64:
				v = x != 0
			}
		}
		out[k] = v
	}
	return out
}

func kindName(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}

func defaultMessage(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "email":
		return "Invalid email address"
	case "url":
		return "Invalid url"
	case "min":
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", fe.Param())
	case "lt":
		return fmt.Sprintf("Must be less than %s", fe.Param())
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fe.Param())
	case "eqfield":
		return fmt.Sprintf("Must match %s", fe.Param())
	default:
		return "Invalid value"
	}
}
