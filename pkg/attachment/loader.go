package attachment

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/shouni/gemini-talk-kit/pkg/domain"
	"github.com/shouni/gemini-talk-kit/pkg/imgutil"
)

const (
	DefaultCacheTTL    = 30 * time.Minute
	DefaultMaxBytes    = 4 << 20
	DefaultJPEGQuality = 85
)

var (
	// ErrUnsupportedScheme は gs:// と http(s):// 以外の URI を指定した場合のエラーです。
	ErrUnsupportedScheme = errors.New("unsupported attachment uri scheme")
	// ErrUnsafeURL は SSRF 対策の検証で拒否された URL です。
	ErrUnsafeURL = errors.New("unsafe attachment url")
)

// HTTPFetcher は httpkit.ClientInterface のうち Loader が使う部分です。
type HTTPFetcher interface {
	FetchBytes(ctx context.Context, url string) ([]byte, error)
}

// ObjectReader は remoteio.InputReader のうち Loader が使う部分です。
type ObjectReader interface {
	Open(ctx context.Context, uri string) (io.ReadCloser, error)
}

// Cacher は取得済みデータのキャッシュ操作を抽象化するインターフェースです。
// github.com/patrickmn/go-cache の *cache.Cache がそのまま満たします。
type Cacher interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{}, d time.Duration)
}

// Options は Loader の調整値です。ゼロ値の項目は既定値になります。
type Options struct {
	CacheTTL    time.Duration
	MaxBytes    int
	JPEGQuality int
}

// Loader は URI から添付ファイルを読み込み、domain.Attachment に変換します。
type Loader struct {
	httpClient  HTTPFetcher
	reader      ObjectReader
	cache       Cacher
	opts        Options
	validateURL func(rawURL string) error
}

// NewLoader は依存関係を注入して Loader を初期化します。
// reader が nil の場合 gs:// は扱えず、cache が nil の場合はキャッシュしません。
func NewLoader(httpClient HTTPFetcher, reader ObjectReader, cache Cacher, opts Options) (*Loader, error) {
	if httpClient == nil {
		return nil, fmt.Errorf("httpClient is required")
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultCacheTTL
	}
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = DefaultMaxBytes
	}
	if opts.JPEGQuality <= 0 {
		opts.JPEGQuality = DefaultJPEGQuality
	}
	return &Loader{
		httpClient:  httpClient,
		reader:      reader,
		cache:       cache,
		opts:        opts,
		validateURL: isSafeURL,
	}, nil
}

// Load は URI の内容を取得し、MIME タイプを判定して Attachment を返します。
// 上限を超える画像は JPEG に再圧縮します。
func (l *Loader) Load(ctx context.Context, uri string) (*domain.Attachment, error) {
	uri = strings.TrimSpace(uri)
	data, err := l.fetch(ctx, uri)
	if err != nil {
		return nil, err
	}

	mimeType := detectMIMEType(uri, data)
	if strings.HasPrefix(mimeType, "image/") {
		fitted, recompressed, err := imgutil.FitWithin(data, l.opts.MaxBytes, l.opts.JPEGQuality)
		if err != nil {
			slog.WarnContext(ctx, "画像の再圧縮に失敗しました。元データを使用します", "uri", uri, "error", err)
		} else if recompressed {
			slog.InfoContext(ctx, "添付画像を再圧縮しました", "uri", uri, "before", len(data), "after", len(fitted))
			data = fitted
			mimeType = "image/jpeg"
		}
	}

	return &domain.Attachment{
		Name:       path.Base(strings.SplitN(uri, "?", 2)[0]),
		MIMEType:   mimeType,
		Base64Data: base64.StdEncoding.EncodeToString(data),
	}, nil
}

func (l *Loader) fetch(ctx context.Context, uri string) ([]byte, error) {
	if cached, ok := l.cacheGet(ctx, uri); ok {
		return cached, nil
	}

	var (
		data []byte
		err  error
	)
	switch {
	case strings.HasPrefix(uri, "gs://"):
		data, err = l.readObject(ctx, uri)
	case strings.HasPrefix(uri, "http://"), strings.HasPrefix(uri, "https://"):
		if verr := l.validateURL(uri); verr != nil {
			slog.WarnContext(ctx, "SSRFの可能性がある、または不正なURLをブロックしました", "url", uri, "error", verr)
			return nil, fmt.Errorf("%w: %v", ErrUnsafeURL, verr)
		}
		data, err = l.httpClient.FetchBytes(ctx, uri)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, uri)
	}
	if err != nil {
		return nil, fmt.Errorf("添付ファイルの取得に失敗しました (uri: %s): %w", uri, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("添付ファイルが空です (uri: %s)", uri)
	}

	if l.cache != nil {
		l.cache.Set(uri, data, l.opts.CacheTTL)
	}
	return data, nil
}

func (l *Loader) readObject(ctx context.Context, uri string) ([]byte, error) {
	if l.reader == nil {
		return nil, fmt.Errorf("GCS リーダーが設定されていません")
	}
	rc, err := l.reader.Open(ctx, uri)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func (l *Loader) cacheGet(ctx context.Context, uri string) ([]byte, bool) {
	if l.cache == nil {
		return nil, false
	}
	cached, found := l.cache.Get(uri)
	if !found {
		return nil, false
	}
	data, ok := cached.([]byte)
	if !ok {
		slog.WarnContext(ctx, "キャッシュデータが不正な型です", "uri", uri, "type", fmt.Sprintf("%T", cached))
		return nil, false
	}
	return data, true
}

// detectMIMEType は内容から MIME タイプを判定し、判定できなければ拡張子を使います。
func detectMIMEType(uri string, data []byte) string {
	detected := http.DetectContentType(data)
	if detected != "application/octet-stream" {
		return strings.SplitN(detected, ";", 2)[0]
	}
	if byExt := mime.TypeByExtension(path.Ext(strings.SplitN(uri, "?", 2)[0])); byExt != "" {
		return strings.SplitN(byExt, ";", 2)[0]
	}
	return detected
}
