package endpoint

import (
	"net/http"

	"github.com/mmeshcher/rewardful-client/pkg/model"
)

const (
	ListAffiliateLinks  = "getAffiliate_links"
	CreateAffiliateLink = "postAffiliate_links"
	GetAffiliateLink    = "getAffiliate_linksId"
	UpdateAffiliateLink = "putAffiliate_linksId"
)

func affiliateLinks() []Definition {
	const tag = "Affiliate Links"

	return []Definition{
		{
			Method:      http.MethodGet,
			Path:        "/affiliate_links",
			Alias:       ListAffiliateLinks,
			Tag:         tag,
			Summary:     "List affiliate links",
			Description: "Retrieve a list of affiliate links.",
			Parameters:  []Parameter{affiliateIDQuery, pageQuery, limitQuery},
			Response:    model.AffiliateLinkListSchema,
			Errors:      []ErrorSpec{unauthorized()},
		},
		{
			Method:        http.MethodPost,
			Path:          "/affiliate_links",
			Alias:         CreateAffiliateLink,
			Tag:           tag,
			Summary:       "Create an affiliate link",
			Description:   "Create a new referral link for an affiliate.",
			RequestFormat: EncodingForm,
			Parameters:    []Parameter{body(model.CreateAffiliateLinkRequestSchema)},
			SuccessStatus: http.StatusCreated,
			Response:      model.AffiliateLinkSchema,
			Errors:        []ErrorSpec{badRequest(), unauthorized()},
		},
		{
			Method:      http.MethodGet,
			Path:        "/affiliate_links/:id",
			Alias:       GetAffiliateLink,
			Tag:         tag,
			Summary:     "Retrieve an affiliate link",
			Description: "Retrieve a single affiliate link by its unique ID.",
			Parameters:  []Parameter{idParam},
			Response:    model.AffiliateLinkSchema,
			Errors:      []ErrorSpec{unauthorized(), notFound("Link")},
		},
		{
			Method:        http.MethodPut,
			Path:          "/affiliate_links/:id",
			Alias:         UpdateAffiliateLink,
			Tag:           tag,
			Summary:       "Update an affiliate link",
			Description:   "Update the token of an affiliate link.",
			RequestFormat: EncodingForm,
			Parameters:    []Parameter{body(model.UpdateAffiliateLinkRequestSchema), idParam},
			Response:      model.AffiliateLinkSchema,
			Errors:        []ErrorSpec{badRequest(), unauthorized(), notFound("Link")},
		},
	}
}
