package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// Envelopeはバックエンド応答を正規化した形 {success, code, message?, data}
type Envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data"`
}

// IsNullは data が無い／null のとき true
func (e Envelope) IsNull() bool {
	d := bytes.TrimSpace(e.Data)
	return len(d) == 0 || bytes.Equal(d, []byte("null"))
}

// Decodeは data を out に読み込む（null なら何もしない）
func (e Envelope) Decode(out any) error {
	if out == nil || e.IsNull() {
		return nil
	}
	if err := json.Unmarshal(e.Data, out); err != nil {
		return newError(ErrApplication, e.Code, fmt.Sprintf("invalid response data: %v", err))
	}
	return nil
}

// Observerは呼び出し結果の記録先（metrics）
type Observer interface {
	ObserveBackendCall(method, resource, outcome string, d time.Duration)
}

type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Log        logrus.FieldLogger
	Observer   Observer
}

// Clientはバックエンド REST API への唯一の入口
type Client struct {
	baseURL  string
	http     *http.Client
	log      logrus.FieldLogger
	observer Observer
}

func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("BaseURL is required")
	}

	// timeoutはtransportの既定に任せる
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}

	log := cfg.Log
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	return &Client{
		baseURL:  strings.TrimSuffix(cfg.BaseURL, "/"),
		http:     hc,
		log:      log,
		observer: cfg.Observer,
	}, nil
}

// Doは1回のリクエストを送り、応答を Envelope に正規化する。
// 非2xx と success:false はどちらも *Error で返る。
func (c *Client) Do(ctx context.Context, method, path string, body any) (Envelope, error) {
	start := time.Now()
	env, err := c.do(ctx, method, path, body)
	c.observe(method, path, err, time.Since(start))
	return env, err
}

func (c *Client) do(ctx context.Context, method, path string, body any) (Envelope, error) {
	url := c.baseURL + "/" + strings.TrimPrefix(path, "/")

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return Envelope{}, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return Envelope{}, fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(ctx, req, body != nil)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
		}).WithError(err).Warn("backend request failed")
		return Envelope{}, networkError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Envelope{}, networkError(err)
	}

	env, err := normalize(resp.StatusCode, raw)

	entry := c.log.WithFields(logrus.Fields{
		"method": method,
		"path":   path,
		"status": resp.StatusCode,
	})
	if err != nil {
		entry.WithError(err).Debug("backend rejected request")
	} else {
		entry.Debug("backend request")
	}
	return env, err
}

func (c *Client) setHeaders(ctx context.Context, req *http.Request, hasBody bool) {
	req.Header.Set("Accept", "application/json")
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := TokenFrom(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if id := RequestIDFrom(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}
}

func (c *Client) observe(method, path string, err error, d time.Duration) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveBackendCall(method, resourceOf(path), outcomeOf(err), d)
}

// normalizeは3種類の応答（envelope / 素のJSON / 空）を1つの形にそろえる
func normalize(status int, raw []byte) (Envelope, error) {
	raw = bytes.TrimSpace(raw)
	ok := status >= 200 && status < 300

	var env Envelope
	switch {
	case len(raw) == 0:
		env = Envelope{Success: ok, Code: status}

	case !gjson.ValidBytes(raw):
		if ok {
			return Envelope{Code: status}, newError(ErrApplication, status, "invalid response body")
		}
		env = Envelope{Code: status, Message: string(raw)}

	case gjson.GetBytes(raw, "success").Exists():
		res := gjson.ParseBytes(raw)
		env.Success = res.Get("success").Bool() && ok
		env.Code = status
		if code := res.Get("code"); code.Exists() && code.Type == gjson.Number {
			env.Code = int(code.Int())
		}
		env.Message = res.Get("message").String()
		if d := res.Get("data"); d.Exists() {
			env.Data = json.RawMessage(d.Raw)
		}

	default:
		env = Envelope{Success: ok, Code: status, Data: json.RawMessage(raw)}
		if m := gjson.GetBytes(raw, "message"); m.Exists() {
			env.Message = m.String()
		}
	}

	if env.Success {
		return env, nil
	}

	msg := env.Message
	if msg == "" && gjson.ValidBytes(raw) {
		msg = gjson.GetBytes(raw, "error").String()
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	env.Message = msg

	kind := ErrApplication
	if status == http.StatusNotFound || env.Code == http.StatusNotFound {
		kind = ErrNotFound
	}
	return env, newError(kind, env.Code, msg)
}

// "cart/items/3" → "cart"
func resourceOf(path string) string {
	p := strings.TrimPrefix(path, "/")
	if i := strings.IndexAny(p, "/?"); i >= 0 {
		p = p[:i]
	}
	if p == "" {
		return "root"
	}
	return p
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "success"
	case IsNotFound(err):
		return "not_found"
	default:
		if be, ok := AsError(err); ok && be.Kind == ErrNetwork {
			return "network_error"
		}
		return "error"
	}
}
