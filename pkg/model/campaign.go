package model

import (
	"time"

	v "github.com/mmeshcher/rewardful-client/pkg/validation"
)

// RewardType определяет, как считается вознаграждение кампании.
type RewardType string

const (
	RewardTypePercent RewardType = "percent"
	RewardTypeFlat    RewardType = "flat"
)

// campaignFields: поля кампании в порядке документации API.
// commission_percent и commission_amount_cents независимы: схема не требует взаимоисключения по reward_type.
var campaignFields = []v.Property{
	v.Prop("id", v.UUID().Describe("The unique identifier of the campaign.")),
	v.Prop("created_at", v.DateTime()),
	v.Prop("updated_at", v.DateTime()),
	v.Prop("name", v.String().Describe("The name of the campaign.")),
	v.Prop("url", v.URL().Describe("The URL associated with the campaign.")),
	v.Prop("private", v.Bool()),
	v.Prop("private_tokens", v.Bool()),
	v.Prop("commission_amount_cents", v.Number().Nullish().Describe("The fixed commission amount in cents, if applicable.")),
	v.Prop("commission_amount_currency", v.String().Nullish()),
	v.Prop("minimum_payout_cents", v.Int()),
	v.Prop("max_commission_period_months", v.Number().Nullish()),
	v.Prop("max_commissions", v.Number().Nullish()),
	v.Prop("days_before_referrals_expire", v.Int()),
	v.Prop("days_until_commissions_are_due", v.Int()),
	v.Prop("affiliate_dashboard_text", v.String()),
	v.Prop("custom_reward_description", v.String()),
	v.Prop("welcome_text", v.String()),
	v.Prop("customers_visible_to_affiliates", v.Bool()),
	v.Prop("sale_description_visible_to_affiliates", v.Bool()),
	v.Prop("parameter_type", v.Enum("query", "hash", "path")),
	v.Prop("stripe_coupon_id", v.String().Nullish()),
	v.Prop("default", v.Bool()),
	v.Prop("reward_type", v.Enum(string(RewardTypePercent), string(RewardTypeFlat))),
	v.Prop("commission_percent", v.Number().Nullish().Describe("Commission percentage if the reward type is 'percent'.")),
	v.Prop("minimum_payout_currency", v.String()),
	v.Prop("visitors", v.Int()),
	v.Prop("leads", v.Int()),
	v.Prop("conversions", v.Int()),
	v.Prop("affiliates", v.Int()),
}

// CampaignSchema: полное представление кампании в ответах /campaigns.
var CampaignSchema = v.Object(campaignFields...).Named("Campaign")

// CampaignSummarySchema: кампания, вложенная в партнёра или комиссию: обязательны только id, даты и имя.
var CampaignSummarySchema = func() *v.Schema {
	s := v.Object(campaignFields[:4]...)
	for _, p := range campaignFields[4:] {
		s = s.Extend(v.Prop(p.Name, p.Schema.Optional()))
	}
	return s.Named("CampaignSummary")
}()

// Campaign: кампания партнёрской программы.
type Campaign struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `json:"name"`

	URL                                string     `json:"url,omitempty"`
	Private                            bool       `json:"private,omitempty"`
	PrivateTokens                      bool       `json:"private_tokens,omitempty"`
	CommissionAmountCents              *float64   `json:"commission_amount_cents,omitempty"`
	CommissionAmountCurrency           *string    `json:"commission_amount_currency,omitempty"`
	MinimumPayoutCents                 int        `json:"minimum_payout_cents,omitempty"`
	MaxCommissionPeriodMonths          *float64   `json:"max_commission_period_months,omitempty"`
	MaxCommissions                     *float64   `json:"max_commissions,omitempty"`
	DaysBeforeReferralsExpire          int        `json:"days_before_referrals_expire,omitempty"`
	DaysUntilCommissionsAreDue         int        `json:"days_until_commissions_are_due,omitempty"`
	AffiliateDashboardText             string     `json:"affiliate_dashboard_text,omitempty"`
	CustomRewardDescription            string     `json:"custom_reward_description,omitempty"`
	WelcomeText                        string     `json:"welcome_text,omitempty"`
	CustomersVisibleToAffiliates       bool       `json:"customers_visible_to_affiliates,omitempty"`
	SaleDescriptionVisibleToAffiliates bool       `json:"sale_description_visible_to_affiliates,omitempty"`
	ParameterType                      string     `json:"parameter_type,omitempty"`
	StripeCouponID                     *string    `json:"stripe_coupon_id,omitempty"`
	Default                            bool       `json:"default,omitempty"`
	RewardType                         RewardType `json:"reward_type,omitempty"`
	CommissionPercent                  *float64   `json:"commission_percent,omitempty"`
	MinimumPayoutCurrency              string     `json:"minimum_payout_currency,omitempty"`
	Visitors                           int        `json:"visitors,omitempty"`
	Leads                              int        `json:"leads,omitempty"`
	Conversions                        int        `json:"conversions,omitempty"`
	Affiliates                         int        `json:"affiliates,omitempty"`

	Extra map[string]any `json:"-"`
}

func (c *Campaign) UnmarshalJSON(data []byte) error {
	type plain Campaign
	return unmarshalWithExtra(data, (*plain)(c), &c.Extra)
}

func (c Campaign) MarshalJSON() ([]byte, error) {
	type plain Campaign
	return marshalWithExtra(plain(c), c.Extra)
}
