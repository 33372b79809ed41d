package endpoint

import (
	"net/http"

	"github.com/mmeshcher/rewardful-client/pkg/model"
	v "github.com/mmeshcher/rewardful-client/pkg/validation"
)

const ListReferrals = "getReferrals"

func referrals() []Definition {
	return []Definition{
		{
			Method:      http.MethodGet,
			Path:        "/referrals",
			Alias:       ListReferrals,
			Tag:         "Referrals",
			Summary:     "List referrals",
			Description: "Retrieve a list of referrals with optional filtering, expansion, and pagination.",
			Parameters: []Parameter{
				{Name: "expand", Location: LocationQuery, Schema: v.Array(v.Literal("affiliate")).Optional(), Style: StyleBrackets},
				affiliateIDQuery,
				{Name: "conversion_state", Location: LocationQuery, Schema: v.Array(model.ConversionStateSchema).Optional(), Style: StyleBrackets},
				pageQuery,
				limitQuery,
			},
			Response: model.ReferralListSchema,
			Errors:   bodiless(unauthorized()),
		},
	}
}
