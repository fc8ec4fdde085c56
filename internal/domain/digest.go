package domain

// UnknownSource используется для статей без указанного источника.
const UnknownSource = "Unknown"

// Digest группирует статьи текущего запуска по источникам.
// Порядок источников соответствует порядку их первого появления.
type Digest struct {
	sources  []string
	articles map[string][]Article
}

// NewDigest создает пустой дайджест.
func NewDigest() *Digest {
	return &Digest{
		articles: make(map[string][]Article),
	}
}

// Add добавляет статью в группу её источника.
// Статьи без источника попадают в группу UnknownSource.
func (d *Digest) Add(article Article) {
	source := article.Source
	if source == "" {
		source = UnknownSource
	}
	if _, ok := d.articles[source]; !ok {
		d.sources = append(d.sources, source)
	}
	d.articles[source] = append(d.articles[source], article)
}

// Sources возвращает имена источников в порядке первого появления.
func (d *Digest) Sources() []string {
	return d.sources
}

// Articles возвращает статьи указанного источника в порядке добавления.
func (d *Digest) Articles(source string) []Article {
	return d.articles[source]
}

// Len возвращает общее количество статей в дайджесте.
func (d *Digest) Len() int {
	total := 0
	for _, articles := range d.articles {
		total += len(articles)
	}
	return total
}
