package endpoint

import (
	"net/http"

	"github.com/mmeshcher/rewardful-client/pkg/model"
	v "github.com/mmeshcher/rewardful-client/pkg/validation"
)

const (
	ListPayouts    = "getPayouts"
	GetPayout      = "getPayoutsId"
	MarkPayoutPaid = "putPayoutsIdpay"
)

// PayoutStateFilters: состояния, по которым API фильтрует выплаты. Шире перечня в самой выплате.
var PayoutStateFilters = []string{"paid", "processing", "due", "pending", "completed", "failed"}

func payouts() []Definition {
	const tag = "Payouts"

	return []Definition{
		{
			Method:      http.MethodPut,
			Path:        "/payouts/:id/pay",
			Alias:       MarkPayoutPaid,
			Tag:         tag,
			Summary:     "Mark a payout as paid",
			Description: "Mark a payout as paid. This queues the payout for processing.",
			Parameters:  []Parameter{idParam},
			Response:    model.PayoutSchema,
			Errors:      []ErrorSpec{unauthorized(), notFound("Payout")},
		},
		{
			Method:      http.MethodGet,
			Path:        "/payouts",
			Alias:       ListPayouts,
			Tag:         tag,
			Summary:     "List payouts",
			Description: "Retrieve a list of payouts with optional filtering, expansion, and pagination.",
			Parameters: []Parameter{
				{Name: "expand", Location: LocationQuery, Schema: v.Array(v.Enum("affiliate", "commissions")).Optional(), Style: StyleBrackets},
				affiliateIDQuery,
				{
					Name:     "state",
					Location: LocationQuery,
					Schema:   v.Array(v.Enum(PayoutStateFilters...).Describe("The state of the payout.")).Optional(),
					Style:    StyleBrackets,
				},
				pageQuery,
				limitQuery,
			},
			Response: model.PayoutListSchema,
			Errors:   bodiless(unauthorized()),
		},
		{
			Method:      http.MethodGet,
			Path:        "/payouts/:id",
			Alias:       GetPayout,
			Tag:         tag,
			Summary:     "Retrieve a payout",
			Description: "Retrieve a single payout by its unique ID",
			Parameters:  []Parameter{idParam},
			Response:    model.PayoutSchema,
			Errors:      []ErrorSpec{unauthorized(), notFound("Payout")},
		},
	}
}
