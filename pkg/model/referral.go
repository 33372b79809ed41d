package model

import (
	"time"

	v "github.com/mmeshcher/rewardful-client/pkg/validation"
)

// ConversionState: стадия реферала. Сервер переводит её только вперёд: visitor → lead → conversion.
type ConversionState string

const (
	ConversionStateVisitor    ConversionState = "visitor"
	ConversionStateLead       ConversionState = "lead"
	ConversionStateConversion ConversionState = "conversion"
)

// ConversionStateSchema перечисляет допустимые стадии реферала.
var ConversionStateSchema = v.Enum(
	string(ConversionStateConversion),
	string(ConversionStateLead),
	string(ConversionStateVisitor),
)

// ReferralSchema описывает реферала вместе со ссылкой, клиентом и партнёром.
var ReferralSchema = v.Object(
	v.Prop("id", v.UUID()),
	v.Prop("link", LinkSchema),
	v.Prop("visits", v.Int()),
	v.Prop("customer", CustomerSchema),
	v.Prop("affiliate", AffiliateSchema),
	v.Prop("created_at", v.DateTime()),
	v.Prop("became_lead_at", v.DateTime().Nullable()),
	v.Prop("became_conversion_at", v.DateTime().Nullable()),
	v.Prop("expires_at", v.DateTime().Nullable()),
	v.Prop("updated_at", v.DateTime()),
	v.Prop("deactivated_at", v.DateTime().Nullable()),
	v.Prop("conversion_state", ConversionStateSchema),
	v.Prop("stripe_account_id", v.String().Nullable()),
	v.Prop("stripe_customer_id", v.String().Nullable()),
).Named("Referral")

// Referral: посетитель, лид или конверсия, пришедшие по ссылке партнёра.
type Referral struct {
	ID                 string          `json:"id"`
	Link               Link            `json:"link"`
	Visits             int             `json:"visits"`
	Customer           Customer        `json:"customer"`
	Affiliate          Affiliate       `json:"affiliate"`
	CreatedAt          time.Time       `json:"created_at"`
	BecameLeadAt       *time.Time      `json:"became_lead_at"`
	BecameConversionAt *time.Time      `json:"became_conversion_at"`
	ExpiresAt          *time.Time      `json:"expires_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
	DeactivatedAt      *time.Time      `json:"deactivated_at"`
	ConversionState    ConversionState `json:"conversion_state"`
	StripeAccountID    *string         `json:"stripe_account_id"`
	StripeCustomerID   *string         `json:"stripe_customer_id"`

	Extra map[string]any `json:"-"`
}

func (r *Referral) UnmarshalJSON(data []byte) error {
	type plain Referral
	return unmarshalWithExtra(data, (*plain)(r), &r.Extra)
}

func (r Referral) MarshalJSON() ([]byte, error) {
	type plain Referral
	return marshalWithExtra(plain(r), r.Extra)
}
