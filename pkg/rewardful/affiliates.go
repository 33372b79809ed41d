package rewardful

import (
	"context"

	"github.com/mmeshcher/rewardful-client/pkg/endpoint"
	"github.com/mmeshcher/rewardful-client/pkg/model"
)

func byID(id string) map[string]any {
	return map[string]any{"id": id}
}

// ListAffiliates возвращает страницу партнёров.
func (c *Client) ListAffiliates(ctx context.Context, p ListAffiliatesParams) (*model.List[model.Affiliate], error) {
	var out model.List[model.Affiliate]
	if err := c.invoke(ctx, endpoint.ListAffiliates, Args{Query: p.query()}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateAffiliate создаёт партнёра.
func (c *Client) CreateAffiliate(ctx context.Context, req model.CreateAffiliateRequest) (*model.Affiliate, error) {
	var out model.Affiliate
	if err := c.invoke(ctx, endpoint.CreateAffiliate, Args{Body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAffiliate возвращает партнёра по идентификатору.
func (c *Client) GetAffiliate(ctx context.Context, id string) (*model.Affiliate, error) {
	var out model.Affiliate
	if err := c.invoke(ctx, endpoint.GetAffiliate, Args{Path: byID(id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAffiliate изменяет переданные поля партнёра.
func (c *Client) UpdateAffiliate(ctx context.Context, id string, req model.UpdateAffiliateRequest) (*model.Affiliate, error) {
	var out model.Affiliate
	if err := c.invoke(ctx, endpoint.UpdateAffiliate, Args{Path: byID(id), Body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAffiliateSSO выдаёт одноразовую ссылку входа в кабинет партнёра.
func (c *Client) GetAffiliateSSO(ctx context.Context, id string) (*model.MagicLink, error) {
	var out model.MagicLink
	if err := c.invoke(ctx, endpoint.GetAffiliateSSO, Args{Path: byID(id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
