package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmeshcher/rewardful-client/internal/mockserver"
	"github.com/mmeshcher/rewardful-client/pkg/rewardful"
	"github.com/mmeshcher/rewardful-client/pkg/validation"
)

const testSecret = "sk_test"

func newTestClient(t *testing.T) *rewardful.Client {
	t.Helper()

	store, err := mockserver.DefaultStore()
	require.NoError(t, err)

	srv := httptest.NewServer(mockserver.New(store, testSecret).Router())
	t.Cleanup(srv.Close)

	return rewardful.NewClient(testSecret, rewardful.WithBaseURL(srv.URL+"/v1"))
}

func TestRun_Usage(t *testing.T) {
	c := newTestClient(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "no command", args: nil},
		{name: "unknown command", args: []string{"delete-everything"}},
		{name: "call without alias", args: []string{"call"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(context.Background(), c, tt.args, &bytes.Buffer{})
			assert.ErrorIs(t, err, errUsage)
		})
	}
}

func TestRun_Endpoints(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, run(context.Background(), newTestClient(t), []string{"endpoints"}, &out))

	assert.Contains(t, out.String(), "getAffiliatesIdsso")
	assert.Contains(t, out.String(), "/payouts/:id/pay")
}

func TestRun_Call(t *testing.T) {
	c := newTestClient(t)
	var out bytes.Buffer

	err := run(context.Background(), c, []string{
		"call", "getAffiliatesId", `{"path":{"id":"7da3be64-90d2-48cf-abad-2aeb173ee24a"}}`,
	}, &out)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "Jane", got["first_name"])
}

func TestRun_CallErrors(t *testing.T) {
	c := newTestClient(t)

	err := run(context.Background(), c, []string{"call", "getAffiliatesId", `{"path":`}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "parse arguments")

	err = run(context.Background(), c, []string{"call", "getAffiliatesId", `{"params":{}}`}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "parse arguments")

	err = run(context.Background(), c, []string{"call", "getAffiliatesId", `{"path":{"id":"nope"}}`}, &bytes.Buffer{})
	assert.ErrorIs(t, err, validation.ErrInvalid)
}

func TestRun_Overview(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, run(context.Background(), newTestClient(t), []string{"overview"}, &out))

	var got Overview
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, Overview{
		Affiliates:     1,
		Campaigns:      1,
		DueCommissions: 1,
		Payouts:        1,
		Referrals:      1,
	}, got)
}
