package endpoint

import (
	"net/http"

	"github.com/mmeshcher/rewardful-client/pkg/model"
	v "github.com/mmeshcher/rewardful-client/pkg/validation"
)

const (
	ListCommissions  = "getCommissions"
	GetCommission    = "getCommissionsId"
	UpdateCommission = "putCommissionsId"
	DeleteCommission = "deleteCommissionsId"
)

func commissions() []Definition {
	const tag = "Commissions"

	return []Definition{
		{
			Method:      http.MethodGet,
			Path:        "/commissions",
			Alias:       ListCommissions,
			Tag:         tag,
			Summary:     "List commissions",
			Description: "Retrieve a list of commissions with optional filtering, expansion, and pagination.",
			Parameters: []Parameter{
				{Name: "expand", Location: LocationQuery, Schema: v.Array(v.Literal("sale")).Optional(), Style: StyleBrackets},
				affiliateIDQuery,
				{
					Name:     "state",
					Location: LocationQuery,
					Schema: v.Array(v.Enum(
						string(model.CommissionStatePaid),
						string(model.CommissionStateDue),
						string(model.CommissionStatePending),
					).Describe("The state of the commission.")).Optional(),
					Style: StyleBrackets,
				},
				pageQuery,
				limitQuery,
			},
			Response: model.CommissionListSchema,
			Errors:   bodiless(unauthorized()),
		},
		{
			Method:      http.MethodGet,
			Path:        "/commissions/:id",
			Alias:       GetCommission,
			Tag:         tag,
			Summary:     "Retrieve a commission",
			Description: "Retrieve a single commission by its unique ID",
			Parameters:  []Parameter{idParam},
			Response:    model.CommissionSchema,
			Errors:      bodiless(unauthorized(), notFound("Commission")),
		},
		{
			Method:        http.MethodPut,
			Path:          "/commissions/:id",
			Alias:         UpdateCommission,
			Tag:           tag,
			Summary:       "Update a commission",
			Description:   "Update a commission's paid or due date status.",
			RequestFormat: EncodingForm,
			Parameters:    []Parameter{body(model.UpdateCommissionRequestSchema), idParam},
			Response:      model.CommissionSchema,
			Errors:        bodiless(badRequest(), unauthorized(), notFound("Commission")),
		},
		{
			Method:      http.MethodDelete,
			Path:        "/commissions/:id",
			Alias:       DeleteCommission,
			Tag:         tag,
			Summary:     "Delete a commission",
			Description: "Delete a commission by its unique ID",
			Parameters:  []Parameter{idParam},
			Response:    model.DeleteCommissionResponseSchema,
			Errors:      bodiless(unauthorized(), notFound("Commission")),
		},
	}
}
