package rewardful

import (
	"context"

	"github.com/mmeshcher/rewardful-client/pkg/endpoint"
	"github.com/mmeshcher/rewardful-client/pkg/model"
)

// ListCampaigns возвращает страницу кампаний.
func (c *Client) ListCampaigns(ctx context.Context, p PageParams) (*model.List[model.Campaign], error) {
	var out model.List[model.Campaign]
	if err := c.invoke(ctx, endpoint.ListCampaigns, Args{Query: p.query()}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCampaign создаёт кампанию.
func (c *Client) CreateCampaign(ctx context.Context, req model.CreateCampaignRequest) (*model.Campaign, error) {
	var out model.Campaign
	if err := c.invoke(ctx, endpoint.CreateCampaign, Args{Body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCampaign возвращает кампанию по идентификатору.
func (c *Client) GetCampaign(ctx context.Context, id string) (*model.Campaign, error) {
	var out model.Campaign
	if err := c.invoke(ctx, endpoint.GetCampaign, Args{Path: byID(id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCampaign изменяет имя или минимальную выплату кампании.
func (c *Client) UpdateCampaign(ctx context.Context, id string, req model.UpdateCampaignRequest) (*model.Campaign, error) {
	var out model.Campaign
	if err := c.invoke(ctx, endpoint.UpdateCampaign, Args{Path: byID(id), Body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
