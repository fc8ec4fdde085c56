package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultMaxItems = 5
	defaultCategory = "vendor"
	defaultSMTPPort = 587
)

// Config представляет основную конфигурацию агента новостей.
// Содержит настройки логгера и список отслеживаемых RSS-лент.
type Config struct {
	Logger LoggerConfig `yaml:"logger"`
	Feeds  []Feed       `yaml:"feeds"`
}

// LoggerConfig содержит настройки системы логирования.
// Определяет уровень детализации логов (debug, info, warn, error).
type LoggerConfig struct {
	Level string `yaml:"level"`
}

// Feed представляет конфигурацию отдельной RSS-ленты.
// MaxItems ограничивает количество обрабатываемых записей,
// Category задает рубрику статей этой ленты.
type Feed struct {
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
	MaxItems int    `yaml:"max_items"`
	Category string `yaml:"category"`
}

// Load загружает конфигурацию из YAML-файла по указанному пути.
// Возвращает ошибку если файл не существует, недоступен для чтения
// или содержит некорректный YAML. Для незаданных полей лент применяет
// значения по умолчанию: max_items=5, category="vendor".
func Load(configPath string) (*Config, error) {
	cfg := New()
	fileData, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}
	if err := yaml.Unmarshal(fileData, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML from file %s: %w", configPath, err)
	}
	for i := range cfg.Feeds {
		if cfg.Feeds[i].MaxItems == 0 {
			cfg.Feeds[i].MaxItems = defaultMaxItems
		}
		if cfg.Feeds[i].Category == "" {
			cfg.Feeds[i].Category = defaultCategory
		}
	}
	return cfg, nil
}

// New создает новый экземпляр Config с значениями по умолчанию.
func New() *Config {
	return &Config{
		Logger: LoggerConfig{
			Level: "info",
		},
		Feeds: []Feed{},
	}
}

// Validate проверяет корректность конфигурации.
// Проверяет наличие лент, корректность их URL и имен, а также
// положительность лимита записей. Возвращает ошибку с описанием
// первой найденной проблемы.
func (c *Config) Validate() error {
	if len(c.Feeds) == 0 {
		return fmt.Errorf("feeds must not be empty")
	}
	for _, feed := range c.Feeds {
		if _, err := url.ParseRequestURI(feed.URL); err != nil {
			return fmt.Errorf("invalid url in feeds: %s", feed.URL)
		}
		if feed.Name == "" {
			return fmt.Errorf("feed name cannot be empty for url: %s", feed.URL)
		}
		if feed.MaxItems <= 0 {
			return fmt.Errorf("max_items must be a positive number for feed: %s", feed.Name)
		}
	}
	return nil
}

// MailConfig содержит параметры отправки дайджеста по SMTP.
// Заполняется целиком из переменных окружения.
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       []string
}

// MailFromEnv читает настройки SMTP из окружения.
// Обязательные переменные: SMTP_HOST, SMTP_USER, SMTP_PASS, EMAIL_TO.
// SMTP_PORT по умолчанию 587, EMAIL_FROM по умолчанию равен SMTP_USER.
// Возвращает ошибку с перечнем отсутствующих переменных.
func MailFromEnv() (MailConfig, error) {
	cfg := MailConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     parseIntEnv("SMTP_PORT", defaultSMTPPort),
		Username: os.Getenv("SMTP_USER"),
		Password: os.Getenv("SMTP_PASS"),
	}
	cfg.From = getenv("EMAIL_FROM", cfg.Username)
	for _, addr := range strings.Split(os.Getenv("EMAIL_TO"), ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			cfg.To = append(cfg.To, addr)
		}
	}
	var missing []string
	if cfg.Host == "" {
		missing = append(missing, "SMTP_HOST")
	}
	if cfg.Username == "" {
		missing = append(missing, "SMTP_USER")
	}
	if cfg.Password == "" {
		missing = append(missing, "SMTP_PASS")
	}
	if len(cfg.To) == 0 {
		missing = append(missing, "EMAIL_TO")
	}
	if len(missing) > 0 {
		return MailConfig{}, fmt.Errorf("missing mail configuration environment variables: %s", strings.Join(missing, ", "))
	}
	return cfg, nil
}

// EnhancerConfig содержит параметры внешнего текстового сервиса.
type EnhancerConfig struct {
	APIKey string
	Model  string
}

// EnhancerFromEnv читает настройки текстового сервиса из окружения.
// Пустой APIKey означает, что внешний сервис не используется и агент
// работает только по эвристическим правилам.
func EnhancerFromEnv() EnhancerConfig {
	return EnhancerConfig{
		APIKey: os.Getenv("OPENAI_API_KEY"),
		Model:  getenv("OPENAI_MODEL", "gpt-4o-mini"),
	}
}

// DatabaseURL возвращает DSN архивной базы из окружения.
// Пустое значение отключает архивирование в Postgres.
func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseIntEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
