package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"storefront/internal/domain/model"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const layoutFile = "templates/layout.html"

// Pageはレイアウトに渡す共通データ
type Page struct {
	Title    string
	Identity model.Identity
	Data     any
}

// Rendererはページごとに layout + 本体 を組んだテンプレートを持つ
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer(imageBase string) (*Renderer, error) {
	funcs := Funcs(imageBase)

	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{pages: map[string]*template.Template{}}
	for _, f := range files {
		if f == layoutFile {
			continue
		}
		name := strings.TrimSuffix(path.Base(f), ".html")
		t, err := template.New(path.Base(layoutFile)).Funcs(funcs).ParseFS(templateFS, layoutFile, f)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Executeは名前のページを書き出す
func (r *Renderer) Execute(w io.Writer, name string, p Page) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return t.ExecuteTemplate(w, "layout", p)
}

// HTMLはExecuteの結果をバイト列で返す（キャッシュ用）
func (r *Renderer) HTML(name string, p Page) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Execute(&buf, name, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Renderはecho.Renderer
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	p, ok := data.(Page)
	if !ok {
		p = Page{Data: data}
	}
	return r.Execute(w, name, p)
}

// StaticFSは /static/* で配る
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
