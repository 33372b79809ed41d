package model

// Схемы конвертов списочных ответов.
var (
	AffiliateListSchema       = ListSchema("ListAllAffiliatesResponse", AffiliateSchema)
	CampaignListSchema        = ListSchema("ListCampaignsResponse", CampaignSchema)
	CommissionListSchema      = ListSchema("ListCommissionsResponse", CommissionSchema)
	PayoutListSchema          = ListSchema("ListPayoutsResponse", PayoutSchema)
	ReferralListSchema        = ListSchema("ListReferralsResponse", ReferralSchema)
	AffiliateCouponListSchema = ListSchema("ListAffiliateCouponsResponse", CouponSchema)
	AffiliateLinkListSchema   = ListSchema("ListAffiliateLinksResponse", AffiliateLinkSchema)
)
