package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	APIURL       string // バックエンドAPIのベースURL
	ImageURL     string // 開発時の画像ベースURL
	ImageURLProd string // 本番の画像ベースURL

	JWTSecret    string // JWT検証シークレット（バックエンドと同じ値）
	AuthCookie   string // トークンを入れるcookie名
	CookieSecure bool

	GoEnv    string // development/production
	LogLevel string

	PaymentRedirectDelay time.Duration // 決済成功後に注文一覧へ遷移するまでの待ち

	ActionRateLimit int // actionエンドポイントの秒間上限
	ActionRateBurst int

	ViewCacheSize int
	ViewCacheTTL  time.Duration
}

// IsDevelopmentはGO_ENV=developmentのとき true
func (c Config) IsDevelopment() bool {
	return c.GoEnv == "development"
}

// ImageBaseは環境ごとの画像ベースURL
func (c Config) ImageBase() string {
	if c.IsDevelopment() {
		return c.ImageURL
	}
	return c.ImageURLProd
}

// Loadは環境変数（.envがあれば先に読む）
func Load() (Config, error) {
	// .envは無くてもよい
	_ = godotenv.Load()

	delay, err := atoiOr("PAYMENT_REDIRECT_DELAY", 3)
	if err != nil {
		return Config{}, err
	}
	limit, err := atoiOr("ACTION_RATE_LIMIT", 5)
	if err != nil {
		return Config{}, err
	}
	burst, err := atoiOr("ACTION_RATE_BURST", 10)
	if err != nil {
		return Config{}, err
	}
	cacheSize, err := atoiOr("VIEW_CACHE_SIZE", 256)
	if err != nil {
		return Config{}, err
	}
	cacheTTL, err := atoiOr("VIEW_CACHE_TTL", 60)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port: getenv("PORT", "8080"),

		APIURL:       strings.TrimRight(getenv("API_URL", "http://localhost:8080/api/v1"), "/"),
		ImageURL:     getenv("IMAGE_URL", "http://localhost:8080/uploads/"),
		ImageURLProd: getenv("IMAGE_URL_PROD", "http://localhost:8080/uploads/"),

		JWTSecret:    os.Getenv("JWT_SECRET"),
		AuthCookie:   getenv("AUTH_COOKIE", "token"),
		CookieSecure: envBool("COOKIE_SECURE", true),

		GoEnv:    getenv("GO_ENV", "production"),
		LogLevel: getenv("LOG_LEVEL", "info"),

		PaymentRedirectDelay: time.Duration(delay) * time.Second,

		ActionRateLimit: limit,
		ActionRateBurst: burst,

		ViewCacheSize: cacheSize,
		ViewCacheTTL:  time.Duration(cacheTTL) * time.Second,
	}

	//必須チェック
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.ActionRateLimit <= 0 {
		return Config{}, fmt.Errorf("ACTION_RATE_LIMIT must be positive")
	}
	if cfg.ViewCacheSize <= 0 {
		return Config{}, fmt.Errorf("VIEW_CACHE_SIZE must be positive")
	}

	return cfg, nil
}

// Addrはecho.Startに渡す形（":8080"）
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func getenv(key string, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func atoiOr(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "TRUE", "True":
		return true
	case "0", "false", "FALSE", "False":
		return false
	default:
		return def
	}
}
