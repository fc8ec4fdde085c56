package usecase

import (
	"context"
	"log/slog"
	"strings"
)

// fallbackDrawback возвращается когда ни одно правило не сработало.
const fallbackDrawback = "Consider cost, adoption effort, and governance implications."

// vendorWeaknesses содержит известные слабые стороны отслеживаемых вендоров.
// Ключи сравниваются с именем источника без учета регистра.
var vendorWeaknesses = map[string]string{
	"tableau":     "Licensing costs scale quickly and large workbooks can strain performance.",
	"power bi":    "Deeply tied to the Microsoft stack, which limits flexibility outside Azure.",
	"looker":      "Requires LookML expertise and follows Google Cloud's roadmap priorities.",
	"qlik":        "Associative engine comes with a steep learning curve for new analysts.",
	"domo":        "Consumption-based pricing is opaque and makes budgeting difficult.",
	"sisense":     "Embedded analytics focus can leave standalone BI workflows underserved.",
	"thoughtspot": "Search-driven analytics depends on careful data modeling up front.",
}

// keywordRule связывает группу ключевых слов с готовой формулировкой недостатка.
type keywordRule struct {
	keywords []string
	drawback string
}

// keywordRules проверяются по порядку, срабатывает первое совпадение.
// Ключевые слова ищутся как подстроки в склейке заголовка и изложения.
var keywordRules = []keywordRule{
	{
		keywords: []string{"security", "breach", "privacy"},
		drawback: "May raise security and compliance concerns.",
	},
	{
		keywords: []string{"ai", "machine learning", "automation"},
		drawback: "Could require significant compute resources and expert oversight.",
	},
	{
		keywords: []string{"cloud", "saas"},
		drawback: "Relies on external infrastructure and possible vendor lock-in.",
	},
	{
		keywords: []string{"partnership", "integration"},
		drawback: "Integration complexity and potential data silos.",
	},
	{
		keywords: []string{"cost", "pricing"},
		drawback: "Pricing changes may affect total cost of ownership for existing customers.",
	},
	{
		keywords: []string{"complexity", "training"},
		drawback: "Added complexity may require dedicated training and enablement.",
	},
	{
		keywords: []string{"migration", "silo"},
		drawback: "Migration effort and risk of fragmented data silos.",
	},
	{
		keywords: []string{"performance", "latency"},
		drawback: "Performance at scale remains unproven until validated in production.",
	},
}

// DrawbackAnnotator подбирает краткое замечание о недостатке для статьи.
// Порядок уровней: внешний сервис, таблица вендоров, ключевые слова,
// общая формулировка. Без внешнего сервиса результат детерминирован.
type DrawbackAnnotator struct {
	enhancer TextEnhancer
	log      *slog.Logger
}

// NewDrawbackAnnotator создает новый аннотатор.
// Параметр enhancer может быть nil, тогда используются только правила.
func NewDrawbackAnnotator(enhancer TextEnhancer, log *slog.Logger) *DrawbackAnnotator {
	return &DrawbackAnnotator{
		enhancer: enhancer,
		log:      log,
	}
}

// Annotate возвращает замечание о недостатке для статьи.
// Любая ошибка внешнего сервиса приводит к молчаливому переходу
// на нижние уровни правил и никогда не прерывает обработку.
func (a *DrawbackAnnotator) Annotate(ctx context.Context, title, summary, source string) string {
	if a.enhancer != nil {
		generated, err := a.enhancer.Drawback(ctx, title, summary, source)
		if err == nil && generated != "" {
			return generated
		}
		if err != nil {
			a.log.Debug("Enhancer drawback failed, falling back to rules",
				slog.Any("error", err),
			)
		}
	}
	if weakness, ok := vendorWeaknesses[strings.ToLower(strings.TrimSpace(source))]; ok {
		return weakness
	}
	text := strings.ToLower(title + " " + summary)
	for _, rule := range keywordRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(text, keyword) {
				return rule.drawback
			}
		}
	}
	return fallbackDrawback
}
