package usecase

import (
	"context"
	"html"
	"log/slog"
	"newsagent/internal/domain"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

const summarySentences = 2

// Summarizer извлекает краткое изложение из текстовых полей записи ленты.
// При наличии внешнего сервиса использует его, при любом сбое молча
// откатывается на первые два предложения очищенного текста.
type Summarizer struct {
	enhancer TextEnhancer
	policy   *bluemonday.Policy
	log      *slog.Logger
}

// NewSummarizer создает новый Summarizer.
// Параметр enhancer может быть nil, тогда используются только эвристики.
func NewSummarizer(enhancer TextEnhancer, log *slog.Logger) *Summarizer {
	return &Summarizer{
		enhancer: enhancer,
		policy:   bluemonday.StrictPolicy(),
		log:      log,
	}
}

// Summarize возвращает краткое изложение записи.
// Объединяет все доступные текстовые поля, убирает HTML-разметку
// и HTML-сущности. Возвращает пустую строку если текстовых полей нет.
func (s *Summarizer) Summarize(ctx context.Context, entry domain.Entry) string {
	var parts []string
	for _, field := range []string{entry.Description, entry.Content} {
		if field != "" {
			parts = append(parts, field)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	text := s.stripHTML(strings.Join(parts, " "))
	if s.enhancer != nil && text != "" {
		generated, err := s.enhancer.Summarize(ctx, text)
		if err == nil && generated != "" {
			return generated
		}
		if err != nil {
			s.log.Debug("Enhancer summary failed, falling back to heuristic",
				slog.Any("error", err),
			)
		}
	}
	return firstSentences(text, summarySentences)
}

// stripHTML убирает разметку и раскодирует HTML-сущности.
func (s *Summarizer) stripHTML(text string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(text)))
}

// firstSentences возвращает первые n предложений текста, склеенные пробелом.
// Границей предложения считается '.', '!' или '?' с последующим пробелом.
func firstSentences(text string, n int) string {
	sentences := splitSentences(text)
	if len(sentences) > n {
		sentences = sentences[:n]
	}
	return strings.TrimSpace(strings.Join(sentences, " "))
}

func splitSentences(text string) []string {
	var sentences []string
	runes := []rune(text)
	start := 0
	for i := 0; i < len(runes); i++ {
		if runes[i] != '.' && runes[i] != '!' && runes[i] != '?' {
			continue
		}
		j := i + 1
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			j++
		}
		if j == i+1 {
			continue
		}
		sentences = append(sentences, string(runes[start:i+1]))
		start = j
		i = j - 1
	}
	if start < len(runes) {
		sentences = append(sentences, string(runes[start:]))
	}
	return sentences
}
