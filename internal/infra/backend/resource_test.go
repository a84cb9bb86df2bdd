package backend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"storefront/internal/infra/backend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type widgetCreate struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type widgetUpdate struct {
	Name *string `json:"name,omitempty"`
}

// fakeWidgetsはenvelopeを返す小さなインメモリバックエンド
type fakeWidgets struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]widget
}

func newFakeWidgets() *fakeWidgets {
	return &fakeWidgets{nextID: 1, items: map[int64]widget{}}
}

func (f *fakeWidgets) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	write := func(status int, success bool, data any) {
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": success, "code": status, "data": data})
	}

	rest := strings.TrimPrefix(r.URL.Path, "/widgets")
	rest = strings.TrimPrefix(rest, "/")

	if rest == "" {
		switch r.Method {
		case http.MethodGet:
			if len(f.items) == 0 {
				write(http.StatusOK, true, nil)
				return
			}
			out := []widget{}
			for i := int64(1); i < f.nextID; i++ {
				if it, ok := f.items[i]; ok {
					out = append(out, it)
				}
			}
			write(http.StatusOK, true, out)
		case http.MethodPost:
			var in widgetCreate
			_ = json.NewDecoder(r.Body).Decode(&in)
			it := widget{ID: f.nextID, Name: in.Name, Price: in.Price}
			f.items[it.ID] = it
			f.nextID++
			write(http.StatusCreated, true, it)
		}
		return
	}

	id, _ := strconv.ParseInt(rest, 10, 64)
	it, ok := f.items[id]
	if !ok {
		write(http.StatusNotFound, false, nil)
		return
	}
	switch r.Method {
	case http.MethodGet:
		write(http.StatusOK, true, it)
	case http.MethodPut:
		var in widgetUpdate
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in.Name != nil {
			it.Name = *in.Name
		}
		f.items[id] = it
		write(http.StatusOK, true, it)
	case http.MethodDelete:
		delete(f.items, id)
		write(http.StatusOK, true, nil)
	}
}

func newWidgets(t *testing.T) *backend.Resource[widget, widgetCreate, widgetUpdate] {
	t.Helper()
	srv := httptest.NewServer(newFakeWidgets())
	t.Cleanup(srv.Close)

	c, err := backend.New(backend.Config{BaseURL: srv.URL})
	require.NoError(t, err)
	return backend.NewResource[widget, widgetCreate, widgetUpdate](c, "widgets")
}

func TestResource_List_EmptyIsNotNil(t *testing.T) {
	res := newWidgets(t)

	got, err := res.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Len(t, got, 0)
}

// create → get で送ったフィールドが返る
func TestResource_CreateThenGet(t *testing.T) {
	res := newWidgets(t)
	ctx := context.Background()

	created, err := res.Create(ctx, widgetCreate{Name: "lamp", Price: 12.5})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := res.Get(ctx, strconv.FormatInt(created.ID, 10))
	require.NoError(t, err)
	assert.Equal(t, "lamp", got.Name)
	assert.Equal(t, 12.5, got.Price)

	list, err := res.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestResource_UpdatePartial(t *testing.T) {
	res := newWidgets(t)
	ctx := context.Background()

	created, err := res.Create(ctx, widgetCreate{Name: "lamp", Price: 12.5})
	require.NoError(t, err)

	name := "desk lamp"
	updated, err := res.Update(ctx, strconv.FormatInt(created.ID, 10), widgetUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "desk lamp", updated.Name)
	assert.Equal(t, 12.5, updated.Price)
}

// 2回目のdeleteは NotFound になるだけで panic しない
func TestResource_DeleteTwice(t *testing.T) {
	res := newWidgets(t)
	ctx := context.Background()

	created, err := res.Create(ctx, widgetCreate{Name: "lamp"})
	require.NoError(t, err)
	id := strconv.FormatInt(created.ID, 10)

	require.NoError(t, res.Delete(ctx, id))

	assert.NotPanics(t, func() {
		err = res.Delete(ctx, id)
	})
	assert.True(t, backend.IsNotFound(err))

	_, err = res.Get(ctx, id)
	assert.True(t, backend.IsNotFound(err))
}

func TestResource_GetNullDataIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"code":200,"data":null}`))
	}))
	t.Cleanup(srv.Close)

	c, err := backend.New(backend.Config{BaseURL: srv.URL})
	require.NoError(t, err)
	res := backend.NewResource[widget, widgetCreate, widgetUpdate](c, "widgets")

	_, err = res.Get(context.Background(), "1")
	assert.True(t, backend.IsNotFound(err))
}

func TestResource_RawPaths(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.Method+" "+r.URL.RequestURI())
		mu.Unlock()
		_, _ = w.Write([]byte(`{"success":true,"data":{"status":"PENDING"}}`))
	}))
	t.Cleanup(srv.Close)

	c, err := backend.New(backend.Config{BaseURL: srv.URL})
	require.NoError(t, err)
	res := backend.NewResource[widget, widgetCreate, widgetUpdate](c, "payments")
	ctx := context.Background()

	var out struct {
		Status string `json:"status"`
	}
	require.NoError(t, res.GetPath(ctx, "verify?session_id=cs_1", &out))
	assert.Equal(t, "PENDING", out.Status)

	require.NoError(t, res.PostPath(ctx, "checkout", map[string]any{"orderNumber": "ORD-1"}, nil))
	require.NoError(t, res.DeletePath(ctx, "/items/3", nil))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{
		"GET /payments/verify?session_id=cs_1",
		"POST /payments/checkout",
		"DELETE /payments/items/3",
	}, seen)
}
