package model

import (
	"time"

	v "github.com/mmeshcher/rewardful-client/pkg/validation"
)

// AffiliateState описывает состояние партнёра.
type AffiliateState string

const (
	AffiliateStateActive   AffiliateState = "active"
	AffiliateStateInactive AffiliateState = "inactive"
)

// LinkSchema описывает реферальную ссылку партнёра.
var LinkSchema = v.Object(
	v.Prop("id", v.UUID()),
	v.Prop("url", v.URL()),
	v.Prop("token", v.String()),
	v.Prop("visitors", v.Int()),
	v.Prop("leads", v.Int()),
	v.Prop("conversions", v.Int()),
).Named("Link")

// AffiliateLinkSchema: ссылка в ответах /affiliate_links, дополнительно содержит affiliate_id.
var AffiliateLinkSchema = LinkSchema.Extend(
	v.Prop("affiliate_id", v.UUID()),
).Named("AffiliateLink")

// CouponSchema описывает купон партнёра.
var CouponSchema = v.Object(
	v.Prop("id", v.UUID()),
	v.Prop("external_id", v.String()),
	v.Prop("token", v.String()),
	v.Prop("leads", v.Int()),
	v.Prop("conversions", v.Int()),
	v.Prop("affiliate_id", v.UUID()),
).Named("Coupon")

// AffiliateSchema описывает партнёра. stripe_customer_id и stripe_account_id могут отсутствовать или быть null.
var AffiliateSchema = v.Object(
	v.Prop("id", v.UUID()),
	v.Prop("created_at", v.DateTime()),
	v.Prop("updated_at", v.DateTime()),
	v.Prop("first_name", v.String()),
	v.Prop("last_name", v.String()),
	v.Prop("email", v.Email()),
	v.Prop("paypal_email", v.Email().Nullable()),
	v.Prop("state", v.Enum(string(AffiliateStateActive), string(AffiliateStateInactive))),
	v.Prop("stripe_customer_id", v.String().Nullish()),
	v.Prop("stripe_account_id", v.String().Nullish()),
	v.Prop("visitors", v.Int()),
	v.Prop("leads", v.Int()),
	v.Prop("conversions", v.Int()),
	v.Prop("campaign", CampaignSummarySchema.Nullish()),
	v.Prop("links", v.Array(LinkSchema).Optional()),
	v.Prop("coupon", CouponSchema.Nullish()),
	v.Prop("confirmed_at", v.DateTime().Nullish()),
	v.Prop("paypal_email_confirmed_at", v.DateTime().Nullish()),
	v.Prop("wise_email", v.Email().Nullish()),
	v.Prop("wise_email_confirmed_at", v.DateTime().Nullish()),
	v.Prop("unconfirmed_email", v.Email().Nullish()),
	v.Prop("receive_new_commission_notifications", v.Bool().Optional()),
	v.Prop("sign_in_count", v.Int().Optional()),
).Named("Affiliate")

// AffiliateBasicSchema: сокращённое представление партнёра в ответе SSO.
var AffiliateBasicSchema = v.Object(
	v.Prop("id", v.UUID().Describe("Affiliate ID")),
	v.Prop("email", v.Email().Describe("Email address of the affiliate")),
).Named("AffiliateBasic")

// SSOSchema описывает одноразовую ссылку входа в кабинет партнёра.
var SSOSchema = v.Object(
	v.Prop("url", v.URL().Describe("URL for the SSO login link for the affiliate")),
	v.Prop("expires", v.DateTime().Describe("Expiration timestamp of the SSO link")),
).Named("SSO")

// MagicLinkResponseSchema: ответ GET /affiliates/:id/sso.
var MagicLinkResponseSchema = v.Object(
	v.Prop("sso", SSOSchema),
	v.Prop("affiliate", AffiliateBasicSchema),
).Partial().Named("MagicLinkResponse")

// Link: реферальная ссылка.
type Link struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Token       string `json:"token"`
	Visitors    int    `json:"visitors"`
	Leads       int    `json:"leads"`
	Conversions int    `json:"conversions"`
	AffiliateID string `json:"affiliate_id,omitempty"`

	Extra map[string]any `json:"-"`
}

func (l *Link) UnmarshalJSON(data []byte) error {
	type plain Link
	return unmarshalWithExtra(data, (*plain)(l), &l.Extra)
}

func (l Link) MarshalJSON() ([]byte, error) {
	type plain Link
	return marshalWithExtra(plain(l), l.Extra)
}

// Coupon: купон партнёра.
type Coupon struct {
	ID          string `json:"id"`
	ExternalID  string `json:"external_id"`
	Token       string `json:"token"`
	Leads       int    `json:"leads"`
	Conversions int    `json:"conversions"`
	AffiliateID string `json:"affiliate_id"`

	Extra map[string]any `json:"-"`
}

func (c *Coupon) UnmarshalJSON(data []byte) error {
	type plain Coupon
	return unmarshalWithExtra(data, (*plain)(c), &c.Extra)
}

func (c Coupon) MarshalJSON() ([]byte, error) {
	type plain Coupon
	return marshalWithExtra(plain(c), c.Extra)
}

// Affiliate: партнёр. Поля, не описанные в структуре, сохраняются в Extra.
type Affiliate struct {
	ID               string         `json:"id"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	FirstName        string         `json:"first_name"`
	LastName         string         `json:"last_name"`
	Email            string         `json:"email"`
	PaypalEmail      *string        `json:"paypal_email"`
	State            AffiliateState `json:"state"`
	StripeCustomerID *string        `json:"stripe_customer_id,omitempty"`
	StripeAccountID  *string        `json:"stripe_account_id,omitempty"`
	Visitors         int            `json:"visitors"`
	Leads            int            `json:"leads"`
	Conversions      int            `json:"conversions"`
	Campaign         *Campaign      `json:"campaign,omitempty"`
	Links            []Link         `json:"links,omitempty"`
	Coupon           *Coupon        `json:"coupon,omitempty"`

	ConfirmedAt                       *time.Time `json:"confirmed_at,omitempty"`
	PaypalEmailConfirmedAt            *time.Time `json:"paypal_email_confirmed_at,omitempty"`
	WiseEmail                         *string    `json:"wise_email,omitempty"`
	WiseEmailConfirmedAt              *time.Time `json:"wise_email_confirmed_at,omitempty"`
	UnconfirmedEmail                  *string    `json:"unconfirmed_email,omitempty"`
	ReceiveNewCommissionNotifications *bool      `json:"receive_new_commission_notifications,omitempty"`
	SignInCount                       *int       `json:"sign_in_count,omitempty"`

	Extra map[string]any `json:"-"`
}

func (a *Affiliate) UnmarshalJSON(data []byte) error {
	type plain Affiliate
	return unmarshalWithExtra(data, (*plain)(a), &a.Extra)
}

func (a Affiliate) MarshalJSON() ([]byte, error) {
	type plain Affiliate
	return marshalWithExtra(plain(a), a.Extra)
}

// SSO: ссылка входа в кабинет партнёра.
type SSO struct {
	URL     string    `json:"url"`
	Expires time.Time `json:"expires"`
}

// AffiliateBasic: идентификатор и почта партнёра.
type AffiliateBasic struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// MagicLink: ответ на запрос SSO-ссылки.
type MagicLink struct {
	SSO       *SSO            `json:"sso,omitempty"`
	Affiliate *AffiliateBasic `json:"affiliate,omitempty"`
}
