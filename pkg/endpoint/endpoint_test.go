package endpoint

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmeshcher/rewardful-client/pkg/validation"
)

func TestAlias(t *testing.T) {
	tests := []struct {
		method string
		path   string
		want   string
	}{
		{http.MethodGet, "/affiliates", "getAffiliates"},
		{http.MethodGet, "/affiliates/:id", "getAffiliatesId"},
		{http.MethodPut, "/affiliates/:id", "putAffiliatesId"},
		{http.MethodGet, "/affiliates/:id/sso", "getAffiliatesIdsso"},
		{http.MethodPut, "/payouts/:id/pay", "putPayoutsIdpay"},
		{http.MethodDelete, "/commissions/:id", "deleteCommissionsId"},
		{http.MethodGet, "/affiliate_coupons/:id", "getAffiliate_couponsId"},
		{http.MethodGet, "/affiliates/{id}", "getAffiliatesId"},
		{http.MethodGet, "/affiliate-links", "getAffiliateLinks"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Alias(tt.method, tt.path))
		})
	}
}

func TestRegistryConsistent(t *testing.T) {
	defs := All()
	require.Len(t, defs, 24)

	seen := make(map[string]bool, len(defs))
	for _, d := range defs {
		t.Run(d.Alias, func(t *testing.T) {
			require.NoError(t, d.Check())
			assert.False(t, seen[d.Alias], "duplicate alias")
			seen[d.Alias] = true

			_, ok := d.ErrorFor(http.StatusUnauthorized)
			assert.True(t, ok, "every endpoint documents 401")

			if _, hasBody := d.Body(); hasBody {
				assert.Equal(t, EncodingForm, d.RequestFormat)
				_, ok := d.ErrorFor(http.StatusBadRequest)
				assert.True(t, ok, "write endpoints document 400")
			}
			if len(d.PathVars()) > 0 {
				_, ok := d.ErrorFor(http.StatusNotFound)
				assert.True(t, ok, "endpoints addressing a record document 404")
			}
		})
	}
}

func TestLookup(t *testing.T) {
	d, ok := Lookup(GetAffiliate)
	require.True(t, ok)
	assert.Equal(t, http.MethodGet, d.Method)
	assert.Equal(t, "/affiliates/:id", d.Path)
	assert.Equal(t, []string{"id"}, d.PathVars())
	assert.Equal(t, http.StatusOK, d.SuccessStatus)
	assert.Equal(t, EncodingJSON, d.RequestFormat)

	d, ok = Lookup(CreateAffiliate)
	require.True(t, ok)
	assert.Equal(t, http.StatusCreated, d.SuccessStatus)
	assert.Equal(t, "application/x-www-form-urlencoded", d.RequestFormat.ContentType())

	_, ok = Lookup("getNothing")
	assert.False(t, ok)
}

func TestQueryStyles(t *testing.T) {
	tests := []struct {
		alias string
		param string
		style Style
	}{
		{ListAffiliates, "expand", StyleForm},
		{ListCommissions, "state", StyleBrackets},
		{ListCommissions, "expand", StyleBrackets},
		{ListPayouts, "state", StyleBrackets},
		{ListPayouts, "expand", StyleBrackets},
		{ListReferrals, "conversion_state", StyleBrackets},
		{ListReferrals, "page", StyleForm},
	}

	for _, tt := range tests {
		t.Run(tt.alias+"/"+tt.param, func(t *testing.T) {
			d, ok := Lookup(tt.alias)
			require.True(t, ok)
			p, ok := d.Param(tt.param)
			require.True(t, ok)
			assert.Equal(t, LocationQuery, p.Location)
			assert.Equal(t, tt.style, p.Style)
		})
	}
}

func TestAllReturnsCopy(t *testing.T) {
	defs := All()
	defs[0].Alias = "changed"

	_, ok := Lookup(ListAffiliates)
	assert.True(t, ok)
}

func TestErrorBodies(t *testing.T) {
	tests := []struct {
		alias    string
		status   int
		bodiless bool
	}{
		{alias: ListAffiliates, status: http.StatusUnauthorized, bodiless: true},
		{alias: UpdateAffiliate, status: http.StatusBadRequest, bodiless: true},
		{alias: GetAffiliate, status: http.StatusNotFound, bodiless: true},
		{alias: DeleteCommission, status: http.StatusNotFound, bodiless: true},
		{alias: ListPayouts, status: http.StatusUnauthorized, bodiless: true},
		{alias: ListReferrals, status: http.StatusUnauthorized, bodiless: true},
		{alias: GetCampaign, status: http.StatusNotFound, bodiless: false},
		{alias: GetPayout, status: http.StatusUnauthorized, bodiless: false},
		{alias: MarkPayoutPaid, status: http.StatusNotFound, bodiless: false},
	}

	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			d, ok := Lookup(tt.alias)
			require.True(t, ok)

			spec, ok := d.ErrorFor(tt.status)
			require.True(t, ok)
			assert.Equal(t, tt.bodiless, spec.Schema.Kind() == validation.KindVoid)
		})
	}
}
