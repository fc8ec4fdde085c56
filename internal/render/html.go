package render

import (
	"fmt"
	"html/template"
	"newsagent/internal/domain"
	"os"
	"path/filepath"
	"strings"
)

// reportTemplate группирует статьи по источникам в сворачиваемые секции.
// Всё пользовательское содержимое экранируется средствами html/template.
const reportTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Daily Analytics Digest</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 2em; }
    summary { font-size: 1.2em; font-weight: bold; border-bottom: 1px solid #ccc; cursor: pointer; }
    ul { list-style-type: none; padding-left: 0; }
    li { margin-bottom: 0.5em; }
  </style>
</head>
<body>
<h1>Daily Analytics Digest</h1>
{{- range .Groups}}
<details open>
  <summary>{{.Name}} ({{len .Articles}})</summary>
  <ul>
    {{- range .Articles}}
    <li><a href="{{.Link}}">{{.Title}}</a>{{if .Published}} - {{.Published}}{{end}}</li>
    {{- end}}
  </ul>
</details>
{{- end}}
</body>
</html>
`

type sourceGroup struct {
	Name     string
	Articles []domain.Article
}

// HTMLRenderer формирует статический HTML-отчет по дайджесту.
type HTMLRenderer struct {
	tmpl *template.Template
}

// NewHTMLRenderer создает рендерер с разобранным шаблоном отчета.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{
		tmpl: template.Must(template.New("report").Parse(reportTemplate)),
	}
}

// Render возвращает HTML-представление дайджеста.
func (r *HTMLRenderer) Render(digest *domain.Digest) (string, error) {
	groups := make([]sourceGroup, 0, len(digest.Sources()))
	for _, source := range digest.Sources() {
		groups = append(groups, sourceGroup{
			Name:     source,
			Articles: digest.Articles(source),
		})
	}
	var sb strings.Builder
	if err := r.tmpl.Execute(&sb, struct{ Groups []sourceGroup }{groups}); err != nil {
		return "", fmt.Errorf("failed to execute report template: %w", err)
	}
	return sb.String(), nil
}

// WriteReport записывает HTML-отчет в файл, перезаписывая его целиком.
// Родительские каталоги создаются при необходимости.
func (r *HTMLRenderer) WriteReport(digest *domain.Digest, path string) error {
	html, err := r.Render(digest)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create report directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write report file %s: %w", path, err)
	}
	return nil
}
