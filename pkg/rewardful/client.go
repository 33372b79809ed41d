// Package rewardful предоставляет клиент API Rewardful с проверкой параметров и ответов по схемам.
package rewardful

import (
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mmeshcher/rewardful-client/pkg/endpoint"
)

// DefaultBaseURL: адрес API версии 1.
const DefaultBaseURL = "https://api.getrewardful.com/v1"

// Doer выполняет HTTP-запрос. *http.Client удовлетворяет этому интерфейсу.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Observer получает сведения о каждом выполненном вызове.
// status равен 0, если ответ не был получен.
type Observer interface {
	ObserveCall(alias string, status int, elapsed time.Duration, err error)
}

// Client: клиент API Rewardful. После создания не изменяется и безопасен для конкурентного использования.
type Client struct {
	baseURL    string
	authHeader string
	httpClient Doer
	logger     *zap.Logger
	observer   Observer
	endpoints  map[string]endpoint.Definition
}

// Option настраивает клиент.
type Option func(*Client)

// WithBaseURL заменяет адрес API, например на адрес тестового сервера.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient задаёт транспорт.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) {
		if d != nil {
			c.httpClient = d
		}
	}
}

// WithLogger задаёт логгер; по умолчанию логирование выключено.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver подключает наблюдателя вызовов, например сборщик метрик.
func WithObserver(o Observer) Option {
	return func(c *Client) {
		c.observer = o
	}
}

// WithEndpoints заменяет набор эндпоинтов.
func WithEndpoints(defs []endpoint.Definition) Option {
	return func(c *Client) {
		c.endpoints = indexEndpoints(defs)
	}
}

// NewClient создаёт клиент с Basic-авторизацией: секрет API передаётся как имя пользователя с пустым паролем.
func NewClient(secret string, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		authHeader: BasicAuth(secret),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger:    zap.NewNop(),
		endpoints: indexEndpoints(endpoint.All()),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BasicAuth строит значение заголовка Authorization для секрета API.
func BasicAuth(secret string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(secret+":"))
}

// Endpoint возвращает описание эндпоинта, доступного клиенту.
func (c *Client) Endpoint(alias string) (endpoint.Definition, bool) {
	d, ok := c.endpoints[alias]
	return d, ok
}

func indexEndpoints(defs []endpoint.Definition) map[string]endpoint.Definition {
	m := make(map[string]endpoint.Definition, len(defs))
	for _, d := range defs {
		m[d.Alias] = d
	}
	return m
}
