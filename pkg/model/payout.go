package model

import (
	"time"

	v "github.com/mmeshcher/rewardful-client/pkg/validation"
)

// PayoutState: состояние выплаты. Им управляет сервер; клиент может только отметить выплату оплаченной.
type PayoutState string

const (
	PayoutStatePaid       PayoutState = "paid"
	PayoutStateProcessing PayoutState = "processing"
	PayoutStateCompleted  PayoutState = "completed"
	PayoutStateFailed     PayoutState = "failed"
)

// CommissionItemSchema: комиссия в составе выплаты.
var CommissionItemSchema = v.Object(
	v.Prop("id", v.UUID()),
	v.Prop("currency", v.String()),
	v.Prop("stripe_account_id", v.String().Nullable()),
	v.Prop("due_at", v.DateTime().Nullable()),
	v.Prop("paid_at", v.DateTime().Nullable()),
	v.Prop("created_at", v.DateTime()),
	v.Prop("updated_at", v.DateTime()),
	v.Prop("amount", v.Int().Describe("The amount of the commission in cents.")),
).Named("CommissionItem")

// PayoutSchema описывает выплату; как и в документации API, все поля необязательны.
var PayoutSchema = v.Object(
	v.Prop("id", v.UUID()),
	v.Prop("currency", v.String()),
	v.Prop("paid_at", v.DateTime().Nullable()),
	v.Prop("state", v.Enum(
		string(PayoutStatePaid),
		string(PayoutStateProcessing),
		string(PayoutStateCompleted),
		string(PayoutStateFailed),
	)),
	v.Prop("paid_by_id", v.UUID().Nullable()),
	v.Prop("created_at", v.DateTime()),
	v.Prop("updated_at", v.DateTime()),
	v.Prop("amount", v.Int().Describe("The amount of the payout in cents.")),
	v.Prop("affiliate", AffiliateSchema),
	v.Prop("commissions", v.Array(CommissionItemSchema)),
).Partial().Named("Payout")

// CommissionItem: комиссия, включённая в выплату.
type CommissionItem struct {
	ID              string     `json:"id"`
	Currency        string     `json:"currency"`
	StripeAccountID *string    `json:"stripe_account_id"`
	DueAt           *time.Time `json:"due_at"`
	PaidAt          *time.Time `json:"paid_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	Amount          int        `json:"amount"`

	Extra map[string]any `json:"-"`
}

func (c *CommissionItem) UnmarshalJSON(data []byte) error {
	type plain CommissionItem
	return unmarshalWithExtra(data, (*plain)(c), &c.Extra)
}

func (c CommissionItem) MarshalJSON() ([]byte, error) {
	type plain CommissionItem
	return marshalWithExtra(plain(c), c.Extra)
}

// Payout: выплата партнёру.
type Payout struct {
	ID          string           `json:"id,omitempty"`
	Currency    string           `json:"currency,omitempty"`
	PaidAt      *time.Time       `json:"paid_at,omitempty"`
	State       PayoutState      `json:"state,omitempty"`
	PaidByID    *string          `json:"paid_by_id,omitempty"`
	CreatedAt   *time.Time       `json:"created_at,omitempty"`
	UpdatedAt   *time.Time       `json:"updated_at,omitempty"`
	Amount      int              `json:"amount,omitempty"`
	Affiliate   *Affiliate       `json:"affiliate,omitempty"`
	Commissions []CommissionItem `json:"commissions,omitempty"`

	Extra map[string]any `json:"-"`
}

func (p *Payout) UnmarshalJSON(data []byte) error {
	type plain Payout
	return unmarshalWithExtra(data, (*plain)(p), &p.Extra)
}

func (p Payout) MarshalJSON() ([]byte, error) {
	type plain Payout
	return marshalWithExtra(plain(p), p.Extra)
}
