package rewardful

// ListAffiliatesParams: фильтры списка партнёров. Пустые поля не передаются.
type ListAffiliatesParams struct {
	Expand     string
	CampaignID string
	Email      string
	Page       int
	Limit      int
}

// PageParams: параметры постраничного списка.
type PageParams struct {
	Page  int
	Limit int
}

// ListCommissionsParams: фильтры списка комиссий.
type ListCommissionsParams struct {
	ExpandSale  bool
	AffiliateID string
	States      []string
	Page        int
	Limit       int
}

// ListPayoutsParams: фильтры списка выплат.
type ListPayoutsParams struct {
	Expand      []string
	AffiliateID string
	States      []string
	Page        int
	Limit       int
}

// ListReferralsParams: фильтры списка рефералов.
type ListReferralsParams struct {
	ExpandAffiliate  bool
	AffiliateID      string
	ConversionStates []string
	Page             int
	Limit            int
}

// ListByAffiliateParams: фильтры списков купонов и ссылок.
type ListByAffiliateParams struct {
	AffiliateID string
	Page        int
	Limit       int
}

type query map[string]any

func (q query) str(key, v string) query {
	if v != "" {
		q[key] = v
	}
	return q
}

func (q query) num(key string, v int) query {
	if v != 0 {
		q[key] = v
	}
	return q
}

func (q query) list(key string, v []string) query {
	if len(v) > 0 {
		q[key] = v
	}
	return q
}

func (q query) page(page, limit int) query {
	return q.num("page", page).num("limit", limit)
}

func (p ListAffiliatesParams) query() query {
	return query{}.
		str("expand", p.Expand).
		str("campaign_id", p.CampaignID).
		str("email", p.Email).
		page(p.Page, p.Limit)
}

func (p PageParams) query() query {
	return query{}.page(p.Page, p.Limit)
}

func (p ListCommissionsParams) query() query {
	q := query{}.
		str("affiliate_id", p.AffiliateID).
		list("state", p.States).
		page(p.Page, p.Limit)
	if p.ExpandSale {
		q["expand"] = []string{"sale"}
	}
	return q
}

func (p ListPayoutsParams) query() query {
	return query{}.
		list("expand", p.Expand).
		str("affiliate_id", p.AffiliateID).
		list("state", p.States).
		page(p.Page, p.Limit)
}

func (p ListReferralsParams) query() query {
	q := query{}.
		str("affiliate_id", p.AffiliateID).
		list("conversion_state", p.ConversionStates).
		page(p.Page, p.Limit)
	if p.ExpandAffiliate {
		q["expand"] = []string{"affiliate"}
	}
	return q
}

func (p ListByAffiliateParams) query() query {
	return query{}.
		str("affiliate_id", p.AffiliateID).
		page(p.Page, p.Limit)
}
