package model

import (
	"time"

	v "github.com/mmeshcher/rewardful-client/pkg/validation"
)

// CreateAffiliateRequestSchema: тело POST /affiliates.
var CreateAffiliateRequestSchema = v.Object(
	v.Prop("first_name", v.String().Describe("First name of the affiliate").Example("James")),
	v.Prop("last_name", v.String().Describe("Last name of the affiliate").Example("Bond")),
	v.Prop("email", v.Email().Describe("Email address of the affiliate").Example("jb007@mi6.co.uk")),
	v.Prop("token", v.String().Optional().Describe("Unique identifier or token for the affiliate").Example("jb007")),
	v.Prop("stripe_customer_id", v.String().Optional().Describe("Stripe customer ID associated with the affiliate").Example("cus_ABC123")),
).Named("CreateAffiliateRequest")

// UpdateAffiliateRequestSchema: тело PUT /affiliates/:id, все поля необязательны.
var UpdateAffiliateRequestSchema = CreateAffiliateRequestSchema.Partial().Named("UpdateAffiliateRequest")

// CreateCampaignRequestSchema: тело POST /campaigns.
var CreateCampaignRequestSchema = v.Object(
	v.Prop("name", v.String().Describe("The name of the campaign.")),
	v.Prop("url", v.URL().Describe("The URL associated with the campaign.")),
	v.Prop("private", v.Bool().Describe("Indicates if the campaign is private.")),
	v.Prop("reward_type", v.Enum(string(RewardTypePercent), string(RewardTypeFlat)).
		Describe("Type of reward for the campaign, either 'percent' or 'flat'.")),
	v.Prop("commission_percent", v.Number().Optional().Describe("Commission percentage if the reward type is 'percent'.")),
	v.Prop("minimum_payout_cents", v.Int().Describe("The minimum payout amount in cents.")),
).Named("CreateCampaignRequest")

// UpdateCampaignRequestSchema: тело PUT /campaigns/:id.
var UpdateCampaignRequestSchema = v.Object(
	v.Prop("name", v.String().Describe("The updated name of the campaign.")),
	v.Prop("minimum_payout_cents", v.Int().Describe("The updated minimum payout amount in cents.")),
).Partial().Named("UpdateCampaignRequest")

// UpdateCommissionRequestSchema: тело PUT /commissions/:id. null в paid_at снимает отметку о выплате.
var UpdateCommissionRequestSchema = v.Object(
	v.Prop("paid_at", v.DateTime().Nullable().Describe("Timestamp to mark the commission as paid. Use null to mark as unpaid.")),
	v.Prop("due_at", v.DateTime().Nullable().Describe("Timestamp to set the commission's due date.")),
).Partial().Named("UpdateCommissionRequest")

// CreateAffiliateCouponRequestSchema: тело POST /affiliate_coupons.
var CreateAffiliateCouponRequestSchema = v.Object(
	v.Prop("affiliate_id", v.UUID().Describe("The ID of the affiliate to create the coupon for.")),
	v.Prop("token", v.String().Describe("The coupon code.")),
).Named("CreateAffiliateCouponRequest")

// CreateAffiliateLinkRequestSchema: тело POST /affiliate_links.
var CreateAffiliateLinkRequestSchema = v.Object(
	v.Prop("affiliate_id", v.UUID().Describe("The ID of the affiliate to create the link for.")),
	v.Prop("token", v.String().Describe("The token used in the link URL.")),
).Named("CreateAffiliateLinkRequest")

// UpdateAffiliateLinkRequestSchema: тело PUT /affiliate_links/:id.
var UpdateAffiliateLinkRequestSchema = v.Object(
	v.Prop("token", v.String().Optional().Describe("The new token for the link.")),
).Named("UpdateAffiliateLinkRequest")

// CreateAffiliateRequest: данные нового партнёра.
type CreateAffiliateRequest struct {
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Email            string `json:"email"`
	Token            string `json:"token,omitempty"`
	StripeCustomerID string `json:"stripe_customer_id,omitempty"`
}

// UpdateAffiliateRequest: изменяемые поля партнёра; nil означает «не менять».
type UpdateAffiliateRequest struct {
	FirstName        *string `json:"first_name,omitempty"`
	LastName         *string `json:"last_name,omitempty"`
	Email            *string `json:"email,omitempty"`
	Token            *string `json:"token,omitempty"`
	StripeCustomerID *string `json:"stripe_customer_id,omitempty"`
}

// CreateCampaignRequest: данные новой кампании.
type CreateCampaignRequest struct {
	Name               string     `json:"name"`
	URL                string     `json:"url"`
	Private            bool       `json:"private"`
	RewardType         RewardType `json:"reward_type"`
	CommissionPercent  *float64   `json:"commission_percent,omitempty"`
	MinimumPayoutCents int        `json:"minimum_payout_cents"`
}

// UpdateCampaignRequest: изменяемые поля кампании.
type UpdateCampaignRequest struct {
	Name               *string `json:"name,omitempty"`
	MinimumPayoutCents *int    `json:"minimum_payout_cents,omitempty"`
}

// UpdateCommissionRequest: изменение дат комиссии. Null[time.Time]() передаёт явный null.
type UpdateCommissionRequest struct {
	PaidAt *Nullable[time.Time] `json:"paid_at,omitempty"`
	DueAt  *Nullable[time.Time] `json:"due_at,omitempty"`
}

// CreateAffiliateCouponRequest: новый купон партнёра.
type CreateAffiliateCouponRequest struct {
	AffiliateID string `json:"affiliate_id"`
	Token       string `json:"token"`
}

// CreateAffiliateLinkRequest: новая ссылка партнёра.
type CreateAffiliateLinkRequest struct {
	AffiliateID string `json:"affiliate_id"`
	Token       string `json:"token"`
}

// UpdateAffiliateLinkRequest: изменение токена ссылки.
type UpdateAffiliateLinkRequest struct {
	Token *string `json:"token,omitempty"`
}
