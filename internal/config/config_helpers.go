package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shouni/gemini-talk-kit/pkg/generator"
	"github.com/shouni/netarmor/securenet"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	switch os.Getenv(key) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// getEnvDuration は "90s" のような time.ParseDuration 形式を受け付けます。
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// --- バリデーション ---

// ValidateEssentialConfig はアプリケーション実行に不可欠な設定を検証します。
func ValidateEssentialConfig(cfg *Config) error {
	if !IsSecureURL(cfg.ServiceURL) {
		return fmt.Errorf("security error: SERVICE_URL ('%s') must be HTTPS in production", cfg.ServiceURL)
	}

	if cfg.GeminiAPIKey == "" {
		return fmt.Errorf("configuration error: GEMINI_API_KEY is not set")
	}

	models := cfg.Models()
	for _, v := range []generator.ModelVariant{generator.VariantText, generator.VariantVision, generator.VariantPro} {
		if _, err := models.Resolve(v); err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}
	}

	if cfg.AttachmentJPEGQuality < 1 || cfg.AttachmentJPEGQuality > 100 {
		return fmt.Errorf("ATTACHMENT_JPEG_QUALITY の値が不正です (%d)。1〜100 の範囲で指定してください", cfg.AttachmentJPEGQuality)
	}

	return nil
}

// IsSecureURL は指定された URL が HTTPS または localhost であるか判定します。
func IsSecureURL(rawURL string) bool {
	return securenet.IsSecureServiceURL(rawURL)
}
