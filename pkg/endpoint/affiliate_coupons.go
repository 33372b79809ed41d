package endpoint

import (
	"net/http"

	"github.com/mmeshcher/rewardful-client/pkg/model"
)

const (
	ListAffiliateCoupons  = "getAffiliate_coupons"
	CreateAffiliateCoupon = "postAffiliate_coupons"
	GetAffiliateCoupon    = "getAffiliate_couponsId"
)

func affiliateCoupons() []Definition {
	const tag = "Affiliate Coupons"

	return []Definition{
		{
			Method:      http.MethodGet,
			Path:        "/affiliate_coupons",
			Alias:       ListAffiliateCoupons,
			Tag:         tag,
			Summary:     "List affiliate coupons",
			Description: "Retrieve a list of affiliate coupons.",
			Parameters:  []Parameter{affiliateIDQuery, pageQuery, limitQuery},
			Response:    model.AffiliateCouponListSchema,
			Errors:      []ErrorSpec{unauthorized()},
		},
		{
			Method:        http.MethodPost,
			Path:          "/affiliate_coupons",
			Alias:         CreateAffiliateCoupon,
			Tag:           tag,
			Summary:       "Create an affiliate coupon",
			Description:   "Create a new coupon code for an affiliate.",
			RequestFormat: EncodingForm,
			Parameters:    []Parameter{body(model.CreateAffiliateCouponRequestSchema)},
			SuccessStatus: http.StatusCreated,
			Response:      model.CouponSchema,
			Errors:        []ErrorSpec{badRequest(), unauthorized()},
		},
		{
			Method:      http.MethodGet,
			Path:        "/affiliate_coupons/:id",
			Alias:       GetAffiliateCoupon,
			Tag:         tag,
			Summary:     "Retrieve an affiliate coupon",
			Description: "Retrieve a single affiliate coupon by its unique ID.",
			Parameters:  []Parameter{idParam},
			Response:    model.CouponSchema,
			Errors:      []ErrorSpec{unauthorized(), notFound("Coupon")},
		},
	}
}
