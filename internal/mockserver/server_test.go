package mockserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mmeshcher/rewardful-client/pkg/model"
)

const (
	testSecret   = "test-secret"
	janeID       = "7da3be64-90d2-48cf-abad-2aeb173ee24a"
	campaignID   = "c3482343-8680-40c5-af9a-9efa119713b3"
	payoutID     = "3b03791a-3fb5-4bd6-8ec3-614c9fd978ca"
	commissionID = "5c1d2e3f-4a5b-4c6d-8e7f-9a0b1c2d3e4f"
)

var fixedNow = time.Date(2023, 2, 1, 10, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T) (*Server, http.Handler) {
	t.Helper()

	store, err := DefaultStore()
	require.NoError(t, err)

	srv := New(store, testSecret,
		WithLogger(zap.NewNop()),
		WithClock(func() time.Time { return fixedNow }),
	)
	return srv, srv.Router()
}

func do(t *testing.T, h http.Handler, method, target string, form url.Values) (*http.Response, map[string]any) {
	t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.SetBasicAuth(testSecret, "")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	res := rec.Result()
	var body map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	return res, body
}

func TestBasicAuth_RejectsWrongSecret(t *testing.T) {
	_, h := newTestServer(t)

	tests := []struct {
		name string
		set  func(r *http.Request)
	}{
		{name: "no header", set: func(r *http.Request) {}},
		{name: "wrong secret", set: func(r *http.Request) { r.SetBasicAuth("nope", "") }},
		{name: "non-empty password", set: func(r *http.Request) { r.SetBasicAuth(testSecret, "x") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/affiliates/"+janeID, nil)
			tt.set(req)
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"error":"Invalid API Secret."}`, rec.Body.String())
		})
	}
}

func TestGet_ReturnsFixtureThatMatchesSchema(t *testing.T) {
	_, h := newTestServer(t)

	res, body := do(t, h, http.MethodGet, "/v1/affiliates/"+janeID, nil)

	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "Jane", body["first_name"])
	assert.NoError(t, model.AffiliateSchema.Validate(body))
}

func TestGet_NotFoundMessage(t *testing.T) {
	_, h := newTestServer(t)
	id := "00000000-0000-0000-0000-000000000000"

	res, body := do(t, h, http.MethodGet, "/v1/campaigns/"+id, nil)

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Equal(t, "Campaign not found: "+id, body["error"])
}

func TestList_Pagination(t *testing.T) {
	srv, h := newTestServer(t)
	for i := 0; i < 4; i++ {
		form := url.Values{
			"first_name": {"Test"},
			"last_name":  {"User"},
			"email":      {"user" + string(rune('a'+i)) + "@example.com"},
		}
		res, _ := do(t, h, http.MethodPost, "/v1/affiliates", form)
		require.Equal(t, http.StatusCreated, res.StatusCode)
	}
	require.Len(t, srv.Store().List(Affiliates, nil), 5)

	tests := []struct {
		name      string
		query     string
		count     int
		prev      any
		next      any
		totalPage float64
	}{
		{name: "first page", query: "?limit=2", count: 2, prev: nil, next: float64(2), totalPage: 3},
		{name: "middle page", query: "?limit=2&page=2", count: 2, prev: float64(1), next: float64(3), totalPage: 3},
		{name: "last page", query: "?limit=2&page=3", count: 1, prev: float64(2), next: nil, totalPage: 3},
		{name: "default limit", query: "", count: 5, prev: nil, next: nil, totalPage: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, body := do(t, h, http.MethodGet, "/v1/affiliates"+tt.query, nil)
			require.Equal(t, http.StatusOK, res.StatusCode)

			pagination := body["pagination"].(map[string]any)
			assert.Len(t, body["data"], tt.count)
			assert.Equal(t, tt.prev, pagination["previous_page"])
			assert.Equal(t, tt.next, pagination["next_page"])
			assert.Equal(t, tt.totalPage, pagination["total_pages"])
			assert.Equal(t, float64(5), pagination["total_count"])
		})
	}
}

func TestList_InvalidPage(t *testing.T) {
	_, h := newTestServer(t)

	tests := []struct {
		name  string
		query string
	}{
		{name: "not a number", query: "?page=abc"},
		{name: "zero", query: "?page=0"},
		{name: "past the last page", query: "?page=2"},
		{name: "past the last page with limit", query: "?limit=1&page=2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, body := do(t, h, http.MethodGet, "/v1/campaigns"+tt.query, nil)

			assert.Equal(t, http.StatusBadRequest, res.StatusCode)
			assert.Equal(t, "Invalid page", body["error"])
		})
	}
}

func TestList_EmptyCollectionHasOnePage(t *testing.T) {
	srv, h := newTestServer(t)
	for _, rec := range srv.Store().List(Payouts, nil) {
		require.NoError(t, srv.Store().Delete(Payouts, rec["id"].(string)))
	}

	res, body := do(t, h, http.MethodGet, "/v1/payouts", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	pagination := body["pagination"].(map[string]any)
	assert.Empty(t, body["data"])
	assert.Equal(t, float64(1), pagination["current_page"])
	assert.Equal(t, float64(1), pagination["total_pages"])
	assert.Nil(t, pagination["next_page"])
}

func TestCreateAffiliate(t *testing.T) {
	srv, h := newTestServer(t)

	form := url.Values{
		"first_name": {"John"},
		"last_name":  {"Doe"},
		"email":      {"john@example.com"},
		"token":      {"john"},
	}
	res, body := do(t, h, http.MethodPost, "/v1/affiliates", form)

	require.Equal(t, http.StatusCreated, res.StatusCode)
	assert.NoError(t, model.AffiliateSchema.Validate(body))
	assert.Equal(t, "active", body["state"])
	assert.Equal(t, campaignID, body["campaign"].(map[string]any)["id"])

	links := body["links"].([]any)
	require.Len(t, links, 1)
	assert.Equal(t, "http://www.example.com/?via=john", links[0].(map[string]any)["url"])

	stored := srv.Store().List(AffiliateLinks, func(rec Record) bool {
		return rec["affiliate_id"] == body["id"]
	})
	assert.Len(t, stored, 1)
}

func TestCreateAffiliate_BadRequest(t *testing.T) {
	_, h := newTestServer(t)

	tests := []struct {
		name string
		form url.Values
		want string
	}{
		{
			name: "missing email",
			form: url.Values{"first_name": {"John"}, "last_name": {"Doe"}},
			want: "email",
		},
		{
			name: "malformed email",
			form: url.Values{"first_name": {"John"}, "last_name": {"Doe"}, "email": {"not-an-email"}},
			want: "email",
		},
		{
			name: "taken email",
			form: url.Values{"first_name": {"Jane"}, "last_name": {"Smith"}, "email": {"jane.smith@example.com"}},
			want: "Email has already been taken",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, body := do(t, h, http.MethodPost, "/v1/affiliates", tt.form)

			assert.Equal(t, http.StatusBadRequest, res.StatusCode)
			assert.Contains(t, body["error"], tt.want)
		})
	}
}

func TestUpdateAffiliate_IgnoresUndeclaredFields(t *testing.T) {
	_, h := newTestServer(t)

	form := url.Values{"first_name": {"Janet"}, "state": {"inactive"}}
	res, body := do(t, h, http.MethodPut, "/v1/affiliates/"+janeID, form)

	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "Janet", body["first_name"])
	assert.Equal(t, "Smith", body["last_name"])
	assert.Equal(t, "active", body["state"])
	assert.Equal(t, "2023-02-01T10:00:00Z", body["updated_at"])
}

func TestAffiliateSSO(t *testing.T) {
	_, h := newTestServer(t)

	res, body := do(t, h, http.MethodGet, "/v1/affiliates/"+janeID+"/sso", nil)

	require.Equal(t, http.StatusOK, res.StatusCode)
	sso := body["sso"].(map[string]any)
	assert.Equal(t, "2023-02-01T10:01:00Z", sso["expires"])
	assert.Equal(t, janeID, body["affiliate"].(map[string]any)["id"])
}

func TestCreateCampaign_FillsDefaults(t *testing.T) {
	_, h := newTestServer(t)

	form := url.Values{
		"name":                 {"Spring"},
		"url":                  {"https://spring.example.com/"},
		"private":              {"true"},
		"reward_type":          {"percent"},
		"commission_percent":   {"15"},
		"minimum_payout_cents": {"1000"},
	}
	res, body := do(t, h, http.MethodPost, "/v1/campaigns", form)

	require.Equal(t, http.StatusCreated, res.StatusCode)
	assert.NoError(t, model.CampaignSchema.Validate(body))
	assert.Equal(t, true, body["private"])
	assert.Equal(t, float64(15), body["commission_percent"])
	assert.Equal(t, false, body["default"])
}

func TestListCommissions_StateFilter(t *testing.T) {
	_, h := newTestServer(t)

	tests := []struct {
		query string
		count int
	}{
		{query: "?state[]=due", count: 1},
		{query: "?state[]=paid&state[]=pending", count: 0},
		{query: "?affiliate_id=" + janeID, count: 1},
		{query: "?affiliate_id=00000000-0000-0000-0000-000000000000", count: 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			res, body := do(t, h, http.MethodGet, "/v1/commissions"+tt.query, nil)
			require.Equal(t, http.StatusOK, res.StatusCode)
			assert.Len(t, body["data"], tt.count)
		})
	}
}

func TestUpdateCommission_NullClearsDate(t *testing.T) {
	_, h := newTestServer(t)

	form := url.Values{"due_at": {""}, "paid_at": {"2023-01-15T00:00:00Z"}}
	res, body := do(t, h, http.MethodPut, "/v1/commissions/"+commissionID, form)

	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Nil(t, body["due_at"])
	assert.Equal(t, "2023-01-15T00:00:00Z", body["paid_at"])
}

func TestDeleteCommission(t *testing.T) {
	_, h := newTestServer(t)

	res, body := do(t, h, http.MethodDelete, "/v1/commissions/"+commissionID, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, true, body["deleted"])

	res, _ = do(t, h, http.MethodDelete, "/v1/commissions/"+commissionID, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestPayPayout_MarksCommissionsPaid(t *testing.T) {
	srv, h := newTestServer(t)

	res, body := do(t, h, http.MethodPut, "/v1/payouts/"+payoutID+"/pay", nil)

	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.NoError(t, model.PayoutSchema.Validate(body))
	assert.Equal(t, "processing", body["state"])
	assert.Equal(t, "2023-02-01T10:00:00Z", body["paid_at"])

	items := body["commissions"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "2023-02-01T10:00:00Z", items[0].(map[string]any)["paid_at"])

	commission, err := srv.Store().Get(Commissions, commissionID)
	require.NoError(t, err)
	assert.Equal(t, "2023-02-01T10:00:00Z", commission["paid_at"])
}

func TestListReferrals_ConversionStateFilter(t *testing.T) {
	_, h := newTestServer(t)

	res, body := do(t, h, http.MethodGet, "/v1/referrals?conversion_state[]=lead", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Len(t, body["data"], 0)

	res, body = do(t, h, http.MethodGet, "/v1/referrals?conversion_state[]=conversion&conversion_state[]=lead", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Len(t, body["data"], 1)
}

func TestCreateLink_UnknownAffiliate(t *testing.T) {
	_, h := newTestServer(t)

	form := url.Values{"affiliate_id": {"00000000-0000-0000-0000-000000000000"}, "token": {"ghost"}}
	res, body := do(t, h, http.MethodPost, "/v1/affiliate_links", form)

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body["error"], "Affiliate not found")
}

func TestCreateCoupon_AttachesToAffiliate(t *testing.T) {
	srv, h := newTestServer(t)

	form := url.Values{"affiliate_id": {janeID}, "token": {"JANE30"}}
	res, body := do(t, h, http.MethodPost, "/v1/affiliate_coupons", form)
	require.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Equal(t, "JANE30", body["token"])

	jane, err := srv.Store().Get(Affiliates, janeID)
	require.NoError(t, err)
	assert.Equal(t, "JANE30", jane["coupon"].(Record)["token"])

	res, list := do(t, h, http.MethodGet, "/v1/affiliate_coupons?affiliate_id="+janeID, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Len(t, list["data"], 2)
}

func TestUpdateLink_RewritesURL(t *testing.T) {
	_, h := newTestServer(t)

	form := url.Values{"token": {"janes"}}
	res, body := do(t, h, http.MethodPut, "/v1/affiliate_links/1f2b6c74-3a77-4f7e-9a43-3f0b1b8e2d10", form)

	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "http://www.example.com/?via=janes", body["url"])
}

func TestUnknownRoute(t *testing.T) {
	_, h := newTestServer(t)

	res, body := do(t, h, http.MethodGet, "/v1/unknown", nil)

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Equal(t, "Not Found", body["error"])
}
