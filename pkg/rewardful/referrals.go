package rewardful

import (
	"context"

	"github.com/mmeshcher/rewardful-client/pkg/endpoint"
	"github.com/mmeshcher/rewardful-client/pkg/model"
)

// ListReferrals возвращает страницу рефералов.
func (c *Client) ListReferrals(ctx context.Context, p ListReferralsParams) (*model.List[model.Referral], error) {
	var out model.List[model.Referral]
	if err := c.invoke(ctx, endpoint.ListReferrals, Args{Query: p.query()}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
