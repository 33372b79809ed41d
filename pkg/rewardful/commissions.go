package rewardful

import (
	"context"

	"github.com/mmeshcher/rewardful-client/pkg/endpoint"
	"github.com/mmeshcher/rewardful-client/pkg/model"
)

// ListCommissions возвращает страницу комиссий.
func (c *Client) ListCommissions(ctx context.Context, p ListCommissionsParams) (*model.List[model.Commission], error) {
	var out model.List[model.Commission]
	if err := c.invoke(ctx, endpoint.ListCommissions, Args{Query: p.query()}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCommission возвращает комиссию по идентификатору.
func (c *Client) GetCommission(ctx context.Context, id string) (*model.Commission, error) {
	var out model.Commission
	if err := c.invoke(ctx, endpoint.GetCommission, Args{Path: byID(id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCommission изменяет даты выплаты и погашения комиссии.
func (c *Client) UpdateCommission(ctx context.Context, id string, req model.UpdateCommissionRequest) (*model.Commission, error) {
	var out model.Commission
	if err := c.invoke(ctx, endpoint.UpdateCommission, Args{Path: byID(id), Body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCommission удаляет комиссию.
func (c *Client) DeleteCommission(ctx context.Context, id string) (*model.DeletedCommission, error) {
	var out model.DeletedCommission
	if err := c.invoke(ctx, endpoint.DeleteCommission, Args{Path: byID(id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
