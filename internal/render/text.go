package render

import (
	"fmt"
	"newsagent/internal/domain"
	"strings"
)

// TextRenderer формирует плоский текстовый дайджест для письма.
// Функция drawback подставляет замечание о недостатке для каждой статьи.
type TextRenderer struct {
	drawback func(article domain.Article) string
}

// NewTextRenderer создает текстовый рендерер.
// Параметр drawback может быть nil, тогда строка недостатка опускается.
func NewTextRenderer(drawback func(article domain.Article) string) *TextRenderer {
	return &TextRenderer{
		drawback: drawback,
	}
}

// Render возвращает текстовое представление дайджеста:
// по блоку на источник, по записи на статью.
func (r *TextRenderer) Render(digest *domain.Digest) string {
	var lines []string
	for _, source := range digest.Sources() {
		lines = append(lines, fmt.Sprintf("%s:", source))
		for _, article := range digest.Articles(source) {
			lines = append(lines, fmt.Sprintf("- %s", article.Title))
			if article.Summary != "" {
				lines = append(lines, fmt.Sprintf("  %s", article.Summary))
			}
			if r.drawback != nil {
				lines = append(lines, fmt.Sprintf("  Potential drawback: %s", r.drawback(article)))
			}
			lines = append(lines, fmt.Sprintf("  %s", article.Link))
			lines = append(lines, "")
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
