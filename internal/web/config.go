package web

import (
	"net/url"
	"time"

	"github.com/dmitrymomot/qrgen/pkg/qrcode"
)

// Config is loaded from APP_* variables.
type Config struct {
	Name    string `env:"APP_NAME" envDefault:"qrgen"`
	Env     string `env:"APP_ENV" envDefault:"development"`
	BaseURL string `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`

	Debounce        time.Duration `env:"APP_DEBOUNCE" envDefault:"400ms"`
	PreviewMax      int           `env:"APP_PREVIEW_MAX" envDefault:"512"`
	MaxSize         int           `env:"APP_MAX_SIZE" envDefault:"2048"`
	MaxPayload      int           `env:"APP_MAX_PAYLOAD" envDefault:"2000"`
	MaxLogoBytes    int64         `env:"APP_MAX_LOGO_BYTES" envDefault:"2097152"`
	SessionCapacity int           `env:"APP_SESSION_CAPACITY" envDefault:"10000"`
	HandleCapacity  int           `env:"APP_HANDLE_CAPACITY" envDefault:"20000"`
	RenderCache     int           `env:"APP_RENDER_CACHE" envDefault:"256"`

	RateCapacity int           `env:"APP_RATE_CAPACITY" envDefault:"60"`
	RateRefill   int           `env:"APP_RATE_REFILL" envDefault:"1"`
	RateInterval time.Duration `env:"APP_RATE_INTERVAL" envDefault:"1s"`
	RedisEnabled bool          `env:"APP_REDIS_ENABLED" envDefault:"false"`
}

// DefaultConfig mirrors the envDefault tags.
func DefaultConfig() Config {
	return Config{
		Name:            "qrgen",
		Env:             "development",
		BaseURL:         "http://localhost:8080",
		Debounce:        400 * time.Millisecond,
		PreviewMax:      512,
		MaxSize:         2048,
		MaxPayload:      qrcode.MaxContentLength,
		MaxLogoBytes:    2 << 20,
		SessionCapacity: 10000,
		HandleCapacity:  20000,
		RenderCache:     256,
		RateCapacity:    60,
		RateRefill:      1,
		RateInterval:    time.Second,
	}
}

// canonicalHost is the host part of BaseURL.
func (c Config) canonicalHost() string {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return ""
	}
	return u.Host
}

// maxPayload never exceeds what the encoder accepts.
func (c Config) maxPayload() int {
	if c.MaxPayload <= 0 {
		return qrcode.MaxContentLength
	}
	return min(c.MaxPayload, qrcode.MaxContentLength)
}
