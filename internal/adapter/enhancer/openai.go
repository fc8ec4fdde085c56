package enhancer

import (
	"context"
	"fmt"
	"log/slog"
	"newsagent/internal/config"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const (
	summarizePrompt = "Summarize the following article text in at most two plain sentences. Respond with the summary only."
	drawbackPrompt  = "You are a competitive analyst. Given a news article about an analytics vendor, state one short potential drawback or caveat of the announcement for prospective customers. Respond with a single sentence."
)

// OpenAIEnhancer реализует интерфейс TextEnhancer поверх OpenAI Chat API.
// Используется только при наличии API-ключа; все ошибки вызовов
// обрабатываются вызывающей стороной как сигнал отката на эвристики.
type OpenAIEnhancer struct {
	client *openai.Client
	model  string
	log    *slog.Logger
}

// NewOpenAIEnhancer создает новый клиент текстового сервиса.
func NewOpenAIEnhancer(cfg config.EnhancerConfig, log *slog.Logger) *OpenAIEnhancer {
	return &OpenAIEnhancer{
		client: openai.NewClient(cfg.APIKey),
		model:  cfg.Model,
		log:    log,
	}
}

// Summarize запрашивает у модели краткое изложение текста статьи.
func (e *OpenAIEnhancer) Summarize(ctx context.Context, text string) (string, error) {
	return e.complete(ctx, summarizePrompt, text)
}

// Drawback запрашивает у модели потенциальный недостаток анонса.
// Источник и краткое содержание передаются как дополнительный контекст.
func (e *OpenAIEnhancer) Drawback(ctx context.Context, title, summary, source string) (string, error) {
	var b strings.Builder
	if source != "" {
		fmt.Fprintf(&b, "Vendor: %s\n", source)
	}
	fmt.Fprintf(&b, "Title: %s\n", title)
	if summary != "" {
		fmt.Fprintf(&b, "Summary: %s\n", summary)
	}
	return e.complete(ctx, drawbackPrompt, b.String())
}

func (e *OpenAIEnhancer) complete(ctx context.Context, system, user string) (string, error) {
	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxTokens: 120,
	})
	if err != nil {
		e.log.Debug("Text enhancer call failed", slog.Any("error", err))
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
