package rewardful

import (
	"context"

	"github.com/mmeshcher/rewardful-client/pkg/endpoint"
	"github.com/mmeshcher/rewardful-client/pkg/model"
)

// ListPayouts возвращает страницу выплат.
func (c *Client) ListPayouts(ctx context.Context, p ListPayoutsParams) (*model.List[model.Payout], error) {
	var out model.List[model.Payout]
	if err := c.invoke(ctx, endpoint.ListPayouts, Args{Query: p.query()}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPayout возвращает выплату по идентификатору.
func (c *Client) GetPayout(ctx context.Context, id string) (*model.Payout, error) {
	var out model.Payout
	if err := c.invoke(ctx, endpoint.GetPayout, Args{Path: byID(id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarkPayoutPaid отмечает выплату оплаченной; API ставит её в обработку.
func (c *Client) MarkPayoutPaid(ctx context.Context, id string) (*model.Payout, error) {
	var out model.Payout
	if err := c.invoke(ctx, endpoint.MarkPayoutPaid, Args{Path: byID(id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
