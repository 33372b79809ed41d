package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"

	"github.com/mmeshcher/rewardful-client/pkg/endpoint"
	"github.com/mmeshcher/rewardful-client/pkg/model"
	"github.com/mmeshcher/rewardful-client/pkg/rewardful"
)

var errUsage = errors.New("usage: rewardful [flags] endpoints | call <alias> [args-json] | overview")

// callArgs: аргументы команды call в JSON: {"path": {...}, "query": {...}, "body": {...}}.
type callArgs struct {
	Path  map[string]any `json:"path"`
	Query map[string]any `json:"query"`
	Body  any            `json:"body"`
}

// Overview: сводка по аккаунту.
type Overview struct {
	Affiliates     int `json:"affiliates"`
	Campaigns      int `json:"campaigns"`
	DueCommissions int `json:"due_commissions"`
	Payouts        int `json:"payouts"`
	Referrals      int `json:"referrals"`
}

func run(ctx context.Context, c *rewardful.Client, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "endpoints":
		return listEndpoints(out)
	case "call":
		if len(args) < 2 || len(args) > 3 {
			return errUsage
		}
		raw := ""
		if len(args) == 3 {
			raw = args[2]
		}
		return call(ctx, c, args[1], raw, out)
	case "overview":
		return overview(ctx, c, out)
	default:
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
}

func listEndpoints(out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, d := range endpoint.All() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.Alias, d.Method, d.Path, d.Summary)
	}
	return tw.Flush()
}

func call(ctx context.Context, c *rewardful.Client, alias, raw string, out io.Writer) error {
	var a callArgs
	if raw != "" {
		dec := json.NewDecoder(strings.NewReader(raw))
		dec.UseNumber()
		dec.DisallowUnknownFields()
		if err := dec.Decode(&a); err != nil {
			return fmt.Errorf("parse arguments: %w", err)
		}
	}

	res, err := c.Call(ctx, alias, rewardful.Args{Path: a.Path, Query: a.Query, Body: a.Body})
	if err != nil {
		return err
	}
	return writeJSON(out, res)
}

// overview запрашивает списки параллельно и берёт из каждого общее число записей.
func overview(ctx context.Context, c *rewardful.Client, out io.Writer) error {
	var ov Overview
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		l, err := c.ListAffiliates(ctx, rewardful.ListAffiliatesParams{Limit: 1})
		if err != nil {
			return fmt.Errorf("affiliates: %w", err)
		}
		ov.Affiliates = totalCount(l)
		return nil
	})

	g.Go(func() error {
		l, err := c.ListCampaigns(ctx, rewardful.PageParams{Limit: 1})
		if err != nil {
			return fmt.Errorf("campaigns: %w", err)
		}
		ov.Campaigns = totalCount(l)
		return nil
	})

	g.Go(func() error {
		l, err := c.ListCommissions(ctx, rewardful.ListCommissionsParams{
			States: []string{string(model.CommissionStateDue)},
			Limit:  1,
		})
		if err != nil {
			return fmt.Errorf("commissions: %w", err)
		}
		ov.DueCommissions = totalCount(l)
		return nil
	})

	g.Go(func() error {
		l, err := c.ListPayouts(ctx, rewardful.ListPayoutsParams{Limit: 1})
		if err != nil {
			return fmt.Errorf("payouts: %w", err)
		}
		ov.Payouts = totalCount(l)
		return nil
	})

	g.Go(func() error {
		l, err := c.ListReferrals(ctx, rewardful.ListReferralsParams{Limit: 1})
		if err != nil {
			return fmt.Errorf("referrals: %w", err)
		}
		ov.Referrals = totalCount(l)
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	return writeJSON(out, ov)
}

func totalCount[T any](l *model.List[T]) int {
	if l.Pagination == nil {
		return len(l.Data)
	}
	return int(l.Pagination.TotalCount)
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
