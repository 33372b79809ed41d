// Package model содержит сущности API Rewardful: схемы для проверки ответов и типизированные записи.
package model

import (
	v "github.com/mmeshcher/rewardful-client/pkg/validation"
)

// Схемы параметров, общие для нескольких эндпоинтов.
var (
	IDParam          = v.UUID().Describe("The unique identifier of the resource.")
	AffiliateIDQuery = v.UUID().Optional().Describe("Filter by affiliate ID.")
	PageQuery        = v.Int().Optional().Describe("Page number to retrieve.")
	LimitQuery       = v.Int().Optional().Describe("Number of records per page.")
)

// PaginationSchema описывает блок пагинации списочных ответов.
var PaginationSchema = v.Object(
	v.Prop("previous_page", v.Number().Nullable()),
	v.Prop("current_page", v.Number()),
	v.Prop("next_page", v.Number().Nullable()),
	v.Prop("count", v.Number()),
	v.Prop("limit", v.Number()),
	v.Prop("total_pages", v.Number()),
	v.Prop("total_count", v.Number()),
).Named("Pagination")

// ErrorResponseSchema описывает тело ошибки 4xx.
var ErrorResponseSchema = v.Object(
	v.Prop("error", v.String().Describe("Description of the error.")),
).Named("ErrorResponse")

// CustomerSchema описывает клиента, пришедшего по реферальной ссылке.
var CustomerSchema = v.Object(
	v.Prop("id", v.String().Describe("The unique identifier for the customer on the platform.")),
	v.Prop("name", v.String()),
	v.Prop("email", v.Email()),
	v.Prop("platform", v.String().Describe("The platform associated with this customer (e.g., Stripe).")),
).Named("Customer")

// Pagination содержит сведения о странице списочного ответа.
// Поля числовые без требования целочисленности, как и в схеме.
type Pagination struct {
	PreviousPage *float64 `json:"previous_page"`
	CurrentPage  float64  `json:"current_page"`
	NextPage     *float64 `json:"next_page"`
	Count        float64  `json:"count"`
	Limit        float64  `json:"limit"`
	TotalPages   float64  `json:"total_pages"`
	TotalCount   float64  `json:"total_count"`

	Extra map[string]any `json:"-"`
}

func (p *Pagination) UnmarshalJSON(data []byte) error {
	type plain Pagination
	return unmarshalWithExtra(data, (*plain)(p), &p.Extra)
}

func (p Pagination) MarshalJSON() ([]byte, error) {
	type plain Pagination
	return marshalWithExtra(plain(p), p.Extra)
}

// List: конверт списочного ответа.
type List[T any] struct {
	Pagination *Pagination `json:"pagination,omitempty"`
	Data       []T         `json:"data"`
}

// ListSchema строит схему конверта {pagination, data} для списка элементов item.
func ListSchema(name string, item *v.Schema) *v.Schema {
	return v.Object(
		v.Prop("pagination", PaginationSchema),
		v.Prop("data", v.Array(item)),
	).Partial().Named(name)
}

// ErrorResponse: тело ошибки API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Customer: клиент, связанный с рефералом.
type Customer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Platform string `json:"platform"`

	Extra map[string]any `json:"-"`
}

func (c *Customer) UnmarshalJSON(data []byte) error {
	type plain Customer
	return unmarshalWithExtra(data, (*plain)(c), &c.Extra)
}

func (c Customer) MarshalJSON() ([]byte, error) {
	type plain Customer
	return marshalWithExtra(plain(c), c.Extra)
}
