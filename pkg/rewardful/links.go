package rewardful

import (
	"context"

	"github.com/mmeshcher/rewardful-client/pkg/endpoint"
	"github.com/mmeshcher/rewardful-client/pkg/model"
)

// ListAffiliateCoupons возвращает страницу купонов.
func (c *Client) ListAffiliateCoupons(ctx context.Context, p ListByAffiliateParams) (*model.List[model.Coupon], error) {
	var out model.List[model.Coupon]
	if err := c.invoke(ctx, endpoint.ListAffiliateCoupons, Args{Query: p.query()}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateAffiliateCoupon создаёт купон партнёра.
func (c *Client) CreateAffiliateCoupon(ctx context.Context, req model.CreateAffiliateCouponRequest) (*model.Coupon, error) {
	var out model.Coupon
	if err := c.invoke(ctx, endpoint.CreateAffiliateCoupon, Args{Body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAffiliateCoupon возвращает купон по идентификатору.
func (c *Client) GetAffiliateCoupon(ctx context.Context, id string) (*model.Coupon, error) {
	var out model.Coupon
	if err := c.invoke(ctx, endpoint.GetAffiliateCoupon, Args{Path: byID(id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAffiliateLinks возвращает страницу реферальных ссылок.
func (c *Client) ListAffiliateLinks(ctx context.Context, p ListByAffiliateParams) (*model.List[model.Link], error) {
	var out model.List[model.Link]
	if err := c.invoke(ctx, endpoint.ListAffiliateLinks, Args{Query: p.query()}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateAffiliateLink создаёт реферальную ссылку.
func (c *Client) CreateAffiliateLink(ctx context.Context, req model.CreateAffiliateLinkRequest) (*model.Link, error) {
	var out model.Link
	if err := c.invoke(ctx, endpoint.CreateAffiliateLink, Args{Body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAffiliateLink возвращает ссылку по идентификатору.
func (c *Client) GetAffiliateLink(ctx context.Context, id string) (*model.Link, error) {
	var out model.Link
	if err := c.invoke(ctx, endpoint.GetAffiliateLink, Args{Path: byID(id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAffiliateLink меняет токен ссылки.
func (c *Client) UpdateAffiliateLink(ctx context.Context, id string, req model.UpdateAffiliateLinkRequest) (*model.Link, error) {
	var out model.Link
	if err := c.invoke(ctx, endpoint.UpdateAffiliateLink, Args{Path: byID(id), Body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
