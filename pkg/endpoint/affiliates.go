package endpoint

import (
	"net/http"

	"github.com/mmeshcher/rewardful-client/pkg/model"
	v "github.com/mmeshcher/rewardful-client/pkg/validation"
)

const (
	ListAffiliates  = "getAffiliates"
	CreateAffiliate = "postAffiliates"
	GetAffiliate    = "getAffiliatesId"
	UpdateAffiliate = "putAffiliatesId"
	GetAffiliateSSO = "getAffiliatesIdsso"
)

func affiliates() []Definition {
	const tag = "Affiliates"

	return []Definition{
		{
			Method:      http.MethodGet,
			Path:        "/affiliates",
			Alias:       ListAffiliates,
			Tag:         tag,
			Summary:     "List all affiliates",
			Description: "Retrieve a list of all affiliates with pagination, optional expansion, and filtering by campaign or email.",
			Parameters: []Parameter{
				{Name: "expand", Location: LocationQuery, Schema: v.Enum("campaign", "links", "commission_stats").Optional()},
				{Name: "campaign_id", Location: LocationQuery, Schema: v.UUID().Optional(), Description: "Filter by campaign ID."},
				{Name: "email", Location: LocationQuery, Schema: v.Email().Optional(), Description: "Filter by affiliate email."},
				pageQuery,
				limitQuery,
			},
			Response: model.AffiliateListSchema,
			Errors:   bodiless(unauthorized()),
		},
		{
			Method:        http.MethodPost,
			Path:          "/affiliates",
			Alias:         CreateAffiliate,
			Tag:           tag,
			Summary:       "Create an affiliate",
			Description:   "Create a new affiliate in Rewardful",
			RequestFormat: EncodingForm,
			Parameters:    []Parameter{body(model.CreateAffiliateRequestSchema)},
			SuccessStatus: http.StatusCreated,
			Response:      model.AffiliateSchema,
			Errors:        bodiless(badRequest(), unauthorized()),
		},
		{
			Method:      http.MethodGet,
			Path:        "/affiliates/:id",
			Alias:       GetAffiliate,
			Tag:         tag,
			Summary:     "Retrieve an affiliate",
			Description: "Retrieve a single affiliate by its unique ID",
			Parameters:  []Parameter{idParam},
			Response:    model.AffiliateSchema,
			Errors:      bodiless(unauthorized(), notFound("Affiliate")),
		},
		{
			Method:        http.MethodPut,
			Path:          "/affiliates/:id",
			Alias:         UpdateAffiliate,
			Tag:           tag,
			Summary:       "Update an affiliate",
			Description:   "Update an existing affiliate in Rewardful",
			RequestFormat: EncodingForm,
			Parameters:    []Parameter{body(model.UpdateAffiliateRequestSchema), idParam},
			Response:      model.AffiliateSchema,
			Errors:        bodiless(badRequest(), unauthorized(), notFound("Affiliate")),
		},
		{
			Method:      http.MethodGet,
			Path:        "/affiliates/:id/sso",
			Alias:       GetAffiliateSSO,
			Tag:         tag,
			Summary:     "Generate an SSO link",
			Description: "Generate an SSO link for an affiliate, allowing them to access their account",
			Parameters:  []Parameter{idParam},
			Response:    model.MagicLinkResponseSchema,
			Errors:      bodiless(unauthorized(), notFound("Affiliate")),
		},
	}
}
