package endpoint

import (
	"net/http"

	"github.com/mmeshcher/rewardful-client/pkg/model"
)

const (
	ListCampaigns  = "getCampaigns"
	CreateCampaign = "postCampaigns"
	GetCampaign    = "getCampaignsId"
	UpdateCampaign = "putCampaignsId"
)

func campaigns() []Definition {
	const tag = "Campaigns"

	return []Definition{
		{
			Method:      http.MethodGet,
			Path:        "/campaigns",
			Alias:       ListCampaigns,
			Tag:         tag,
			Summary:     "List campaigns",
			Description: "Retrieve a list of all campaigns.",
			Parameters:  []Parameter{pageQuery, limitQuery},
			Response:    model.CampaignListSchema,
			Errors:      []ErrorSpec{unauthorized()},
		},
		{
			Method:        http.MethodPost,
			Path:          "/campaigns",
			Alias:         CreateCampaign,
			Tag:           tag,
			Summary:       "Create a campaign",
			Description:   "Create a new campaign.",
			RequestFormat: EncodingForm,
			Parameters:    []Parameter{body(model.CreateCampaignRequestSchema)},
			SuccessStatus: http.StatusCreated,
			Response:      model.CampaignSchema,
			Errors:        []ErrorSpec{badRequest(), unauthorized()},
		},
		{
			Method:      http.MethodGet,
			Path:        "/campaigns/:id",
			Alias:       GetCampaign,
			Tag:         tag,
			Summary:     "Retrieve a campaign",
			Description: "Retrieve a single campaign by its unique ID.",
			Parameters:  []Parameter{idParam},
			Response:    model.CampaignSchema,
			Errors:      []ErrorSpec{unauthorized(), notFound("Campaign")},
		},
		{
			Method:        http.MethodPut,
			Path:          "/campaigns/:id",
			Alias:         UpdateCampaign,
			Tag:           tag,
			Summary:       "Update a campaign",
			Description:   "Update an existing campaign.",
			RequestFormat: EncodingForm,
			Parameters:    []Parameter{body(model.UpdateCampaignRequestSchema), idParam},
			Response:      model.CampaignSchema,
			Errors:        []ErrorSpec{badRequest(), unauthorized(), notFound("Campaign")},
		},
	}
}
