package builder

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/patrickmn/go-cache"
	"github.com/shouni/gemini-talk-kit/internal/config"
	"github.com/shouni/gemini-talk-kit/internal/server"
	"github.com/shouni/gemini-talk-kit/pkg/attachment"
	"github.com/shouni/gemini-talk-kit/pkg/domain"
	"github.com/shouni/gemini-talk-kit/pkg/generator"
	"github.com/shouni/go-gemini-client/pkg/gemini"
	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/gcsfactory"
	"github.com/shouni/go-remote-io/pkg/remoteio"
)

// AppContext はアプリケーションの依存関係を保持します。
type AppContext struct {
	Config     config.Config
	Generator  generator.ContentGenerator
	Loader     *attachment.Loader
	HTTPClient httpkit.ClientInterface
	Reader     remoteio.InputReader
}

// BuildAppContext は外部サービスとの接続を確立し、依存関係を組み立てます。
func BuildAppContext(ctx context.Context, cfg config.Config) (*AppContext, error) {
	// 1. 基盤クライアントの初期化
	httpClient := httpkit.New(cfg.HTTPTimeout)

	// 2. I/O インフラ (GCS) は有効な場合のみ初期化
	var reader remoteio.InputReader
	if cfg.EnableGCS {
		r, err := buildInputReader(ctx)
		if err != nil {
			return nil, err
		}
		reader = r
	}

	// 3. 添付ローダー
	imageCache := cache.New(cfg.AttachmentCacheTTL, 2*cfg.AttachmentCacheTTL)
	var objectReader attachment.ObjectReader
	if reader != nil {
		objectReader = reader
	}
	loader, err := attachment.NewLoader(httpClient, objectReader, imageCache, cfg.AttachmentOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to create attachment loader: %w", err)
	}

	// 4. 生成サービス
	aiClient, err := initializeAIClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		return nil, err
	}
	client, err := generator.NewClient(aiClient, cfg.Models())
	if err != nil {
		return nil, fmt.Errorf("failed to create generation client: %w", err)
	}
	svc, err := generator.NewService(client, generator.WithPhaseObserver(logPhase))
	if err != nil {
		return nil, fmt.Errorf("failed to create generation service: %w", err)
	}

	return &AppContext{
		Config:     cfg,
		Generator:  svc,
		Loader:     loader,
		HTTPClient: httpClient,
		Reader:     reader,
	}, nil
}

// NewServerHandler は HTTP ルーティングと各ハンドラーの依存関係を組み立てます。
func NewServerHandler(appCtx *AppContext) (http.Handler, error) {
	var loader server.AttachmentLoader
	if appCtx.Loader != nil {
		loader = appCtx.Loader
	}
	h, err := server.NewHandler(appCtx.Generator, loader)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize handler: %w", err)
	}
	return server.NewRouter(h), nil
}

// initializeAIClient は gemini クライアントを初期化します。
func initializeAIClient(ctx context.Context, apiKey string) (gemini.GenerativeModel, error) {
	aiClient, err := gemini.NewClient(ctx, gemini.Config{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("AIクライアントの初期化に失敗しました: %w", err)
	}
	return aiClient, nil
}

// buildInputReader は GCS ベースの InputReader を初期化します。
func buildInputReader(ctx context.Context) (remoteio.InputReader, error) {
	factory, err := gcsfactory.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS factory: %w", err)
	}
	r, err := factory.InputReader()
	if err != nil {
		return nil, fmt.Errorf("failed to create input reader: %w", err)
	}
	return r, nil
}

// logPhase は終端状態への遷移を INFO で記録します。
func logPhase(ctx context.Context, op domain.Operation, phase domain.Phase) {
	switch phase {
	case domain.PhaseSucceeded, domain.PhaseDoctrinallyRejected, domain.PhaseFailed:
		slog.InfoContext(ctx, "操作が完了しました", "operation", op, "phase", phase)
	}
}
