package domain

// Article представляет отдельную статью, полученную из RSS-ленты.
// Создается один раз при обработке ленты и далее не изменяется.
type Article struct {
	Title     string
	Link      string
	Summary   string
	Published string
	Source    string
	Category  string
}

// Entry представляет сырую запись ленты до преобразования в Article.
// Содержит текстовые поля в исходном виде, включая HTML-разметку.
type Entry struct {
	Title       string
	Link        string
	Published   string
	Description string
	Content     string
}

// ParsedFeed представляет разобранную ленту с метаданными и записями.
type ParsedFeed struct {
	Title   string
	Entries []Entry
}

// Record представляет долговременную запись о статье в хранилище.
// Ключом служит ссылка статьи, поле Fetched содержит дату последней выборки.
type Record struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	Summary   string `json:"summary"`
	Published string `json:"published"`
	Source    string `json:"source"`
	Category  string `json:"category"`
	Drawback  string `json:"drawbacks"`
	Fetched   string `json:"fetched"`
}
