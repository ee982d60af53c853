package config

import (
	"time"

	"github.com/shouni/gemini-talk-kit/pkg/attachment"
	"github.com/shouni/gemini-talk-kit/pkg/generator"
)

const (
	// DefaultHTTPTimeout は Gemini API と添付ダウンロードの応答を考慮したタイムアウト
	DefaultHTTPTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 15 * time.Second
)

// Config は環境変数から読み込まれたアプリケーションの全設定を保持します。
type Config struct {
	ServiceURL      string
	Port            string
	GeminiAPIKey    string
	TextModel       string // 本生成・賛美歌提案用
	VisionModel     string // 画像添付がある本生成用
	ProModel        string // 追加質問用
	HTTPTimeout     time.Duration
	ShutdownTimeout time.Duration

	// Attachment Settings
	AttachmentCacheTTL    time.Duration
	AttachmentMaxBytes    int
	AttachmentJPEGQuality int
	// EnableGCS が true の場合のみ gs:// の添付を扱います。
	EnableGCS bool
}

// LoadConfig は環境変数から設定を読み込み、Config 構造体を生成します。
func LoadConfig() *Config {
	return &Config{
		ServiceURL:      getEnv("SERVICE_URL", "http://localhost:8080"),
		Port:            getEnv("PORT", "8080"),
		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		TextModel:       getEnv("GEMINI_TEXT_MODEL", generator.DefaultTextModel),
		VisionModel:     getEnv("GEMINI_VISION_MODEL", generator.DefaultVisionModel),
		ProModel:        getEnv("GEMINI_PRO_MODEL", generator.DefaultProModel),
		HTTPTimeout:     getEnvDuration("HTTP_TIMEOUT", DefaultHTTPTimeout),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),

		AttachmentCacheTTL:    getEnvDuration("ATTACHMENT_CACHE_TTL", attachment.DefaultCacheTTL),
		AttachmentMaxBytes:    getEnvInt("ATTACHMENT_MAX_BYTES", attachment.DefaultMaxBytes),
		AttachmentJPEGQuality: getEnvInt("ATTACHMENT_JPEG_QUALITY", attachment.DefaultJPEGQuality),
		EnableGCS:             getEnvBool("ENABLE_GCS", false),
	}
}

// Models は設定されたモデル名を generator.Models に変換します。
func (c Config) Models() generator.Models {
	return generator.Models{
		Text:   c.TextModel,
		Vision: c.VisionModel,
		Pro:    c.ProModel,
	}
}

// AttachmentOptions は添付ローダーの調整値を返します。
func (c Config) AttachmentOptions() attachment.Options {
	return attachment.Options{
		CacheTTL:    c.AttachmentCacheTTL,
		MaxBytes:    c.AttachmentMaxBytes,
		JPEGQuality: c.AttachmentJPEGQuality,
	}
}
