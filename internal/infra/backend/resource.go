package backend

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// Resourceは1つのベースパスに エンティティ T / 作成DTO C / 更新DTO U を束ねる
type Resource[T, C, U any] struct {
	client *Client
	base   string
}

func NewResource[T, C, U any](c *Client, base string) *Resource[T, C, U] {
	return &Resource[T, C, U]{client: c, base: strings.Trim(base, "/")}
}

// Listは一覧。data が無いときは空スライス
func (r *Resource[T, C, U]) List(ctx context.Context) ([]T, error) {
	return r.ListPath(ctx, "")
}

// Getはdata:nullを ErrNotFound にする
func (r *Resource[T, C, U]) Get(ctx context.Context, id string) (T, error) {
	var out T
	env, err := r.client.Do(ctx, http.MethodGet, r.path(url.PathEscape(id)), nil)
	if err != nil {
		return out, err
	}
	if env.IsNull() {
		return out, newError(ErrNotFound, http.StatusNotFound, "Not Found")
	}
	err = env.Decode(&out)
	return out, err
}

func (r *Resource[T, C, U]) Create(ctx context.Context, dto C) (T, error) {
	var out T
	err := r.PostPath(ctx, "", dto, &out)
	return out, err
}

// Updateは部分更新（DTOで渡したフィールドだけ）
func (r *Resource[T, C, U]) Update(ctx context.Context, id string, dto U) (T, error) {
	var out T
	err := r.PutPath(ctx, url.PathEscape(id), dto, &out)
	return out, err
}

func (r *Resource[T, C, U]) Delete(ctx context.Context, id string) error {
	return r.DeletePath(ctx, url.PathEscape(id), nil)
}

func (r *Resource[T, C, U]) ListPath(ctx context.Context, sub string) ([]T, error) {
	out := []T{}
	if err := r.GetPath(ctx, sub, &out); err != nil {
		return []T{}, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func (r *Resource[T, C, U]) GetPath(ctx context.Context, sub string, out any) error {
	return r.call(ctx, http.MethodGet, sub, nil, out)
}

func (r *Resource[T, C, U]) PostPath(ctx context.Context, sub string, body, out any) error {
	return r.call(ctx, http.MethodPost, sub, body, out)
}

func (r *Resource[T, C, U]) PutPath(ctx context.Context, sub string, body, out any) error {
	return r.call(ctx, http.MethodPut, sub, body, out)
}

func (r *Resource[T, C, U]) DeletePath(ctx context.Context, sub string, out any) error {
	return r.call(ctx, http.MethodDelete, sub, nil, out)
}

func (r *Resource[T, C, U]) call(ctx context.Context, method, sub string, body, out any) error {
	env, err := r.client.Do(ctx, method, r.path(sub), body)
	if err != nil {
		return err
	}
	return env.Decode(out)
}

func (r *Resource[T, C, U]) path(sub string) string {
	sub = strings.TrimPrefix(sub, "/")
	if sub == "" {
		return r.base
	}
	if strings.HasPrefix(sub, "?") {
		return r.base + sub
	}
	return r.base + "/" + sub
}
