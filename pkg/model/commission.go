package model

import (
	"time"

	v "github.com/mmeshcher/rewardful-client/pkg/validation"
)

// CommissionState: состояние комиссии для фильтра списка.
type CommissionState string

const (
	CommissionStatePaid    CommissionState = "paid"
	CommissionStateDue     CommissionState = "due"
	CommissionStatePending CommissionState = "pending"
)

// SaleSchema описывает продажу, за которую начислена комиссия.
var SaleSchema = v.Object(
	v.Prop("id", v.UUID()),
	v.Prop("currency", v.String()),
	v.Prop("charged_at", v.DateTime()),
	v.Prop("stripe_account_id", v.String().Nullable()),
	v.Prop("stripe_charge_id", v.String().Nullable()),
	v.Prop("invoiced_at", v.DateTime().Nullable()),
	v.Prop("created_at", v.DateTime()),
	v.Prop("updated_at", v.DateTime()),
	v.Prop("charge_amount_cents", v.Int()),
	v.Prop("refund_amount_cents", v.Int()),
	v.Prop("tax_amount_cents", v.Int()),
	v.Prop("sale_amount_cents", v.Int()),
	v.Prop("referral", ReferralSchema),
	v.Prop("affiliate", AffiliateSchema),
).Named("Sale")

// CommissionSchema описывает комиссию. Непустой paid_at означает, что комиссия выплачена.
var CommissionSchema = v.Object(
	v.Prop("id", v.UUID()),
	v.Prop("created_at", v.DateTime()),
	v.Prop("updated_at", v.DateTime()),
	v.Prop("amount", v.Int().Describe("The amount of the commission in cents.")),
	v.Prop("currency", v.String()),
	v.Prop("due_at", v.DateTime().Nullable()),
	v.Prop("paid_at", v.DateTime().Nullable()),
	v.Prop("campaign", CampaignSummarySchema.Nullable()),
	v.Prop("sale", SaleSchema),
).Named("Commission")

// DeleteCommissionResponseSchema: подтверждение удаления комиссии.
var DeleteCommissionResponseSchema = v.Object(
	v.Prop("object", v.Literal("commission").Optional()),
	v.Prop("id", v.UUID()),
	v.Prop("deleted", v.Bool()),
).Partial().Named("DeleteCommissionResponse")

// Sale: продажа, совершённая рефералом.
type Sale struct {
	ID                string     `json:"id"`
	Currency          string     `json:"currency"`
	ChargedAt         time.Time  `json:"charged_at"`
	StripeAccountID   *string    `json:"stripe_account_id"`
	StripeChargeID    *string    `json:"stripe_charge_id"`
	InvoicedAt        *time.Time `json:"invoiced_at"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	ChargeAmountCents int        `json:"charge_amount_cents"`
	RefundAmountCents int        `json:"refund_amount_cents"`
	TaxAmountCents    int        `json:"tax_amount_cents"`
	SaleAmountCents   int        `json:"sale_amount_cents"`
	Referral          Referral   `json:"referral"`
	Affiliate         Affiliate  `json:"affiliate"`

	Extra map[string]any `json:"-"`
}

func (s *Sale) UnmarshalJSON(data []byte) error {
	type plain Sale
	return unmarshalWithExtra(data, (*plain)(s), &s.Extra)
}

func (s Sale) MarshalJSON() ([]byte, error) {
	type plain Sale
	return marshalWithExtra(plain(s), s.Extra)
}

// Commission: комиссия партнёра.
type Commission struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Amount    int        `json:"amount"`
	Currency  string     `json:"currency"`
	DueAt     *time.Time `json:"due_at"`
	PaidAt    *time.Time `json:"paid_at"`
	Campaign  *Campaign  `json:"campaign"`
	Sale      Sale       `json:"sale"`

	Extra map[string]any `json:"-"`
}

// Settled сообщает, выплачена ли комиссия.
func (c *Commission) Settled() bool {
	return c.PaidAt != nil
}

func (c *Commission) UnmarshalJSON(data []byte) error {
	type plain Commission
	return unmarshalWithExtra(data, (*plain)(c), &c.Extra)
}

func (c Commission) MarshalJSON() ([]byte, error) {
	type plain Commission
	return marshalWithExtra(plain(c), c.Extra)
}

// DeletedCommission: ответ на удаление комиссии.
type DeletedCommission struct {
	Object  string `json:"object,omitempty"`
	ID      string `json:"id,omitempty"`
	Deleted bool   `json:"deleted"`
}
