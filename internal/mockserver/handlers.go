package mockserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mmeshcher/rewardful-client/pkg/endpoint"
	"github.com/mmeshcher/rewardful-client/pkg/model"
)

const (
	defaultLimit = 25
	maxLimit     = 100
	linkBaseURL  = "http://www.example.com/"
	ssoBaseURL   = "https://app.getrewardful.com/login/sso"
)

func (s *Server) get(resource, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		rec, err := s.store.Get(resource, id)
		if err != nil {
			notFound(w, name, id)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

func (s *Server) listAffiliates(w http.ResponseWriter, r *http.Request) {
	campaignID := r.URL.Query().Get("campaign_id")
	email := r.URL.Query().Get("email")

	items := s.store.List(Affiliates, func(rec Record) bool {
		if campaignID != "" && dig(rec, "campaign", "id") != campaignID {
			return false
		}
		if email != "" && !strings.EqualFold(fmt.Sprint(rec["email"]), email) {
			return false
		}
		return true
	})
	paginate(w, r, items)
}

func (s *Server) createAffiliate(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r, endpoint.CreateAffiliate)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	email := body["email"].(string)
	taken := s.store.List(Affiliates, func(rec Record) bool {
		return strings.EqualFold(fmt.Sprint(rec["email"]), email)
	})
	if len(taken) > 0 {
		writeError(w, http.StatusBadRequest, "Email has already been taken")
		return
	}

	id := uuid.NewString()
	now := s.timestamp()

	token, _ := body["token"].(string)
	if token == "" {
		token = strings.ToLower(body["first_name"].(string)) + id[:4]
	}

	link := Record{
		"id":          uuid.NewString(),
		"url":         linkBaseURL + "?via=" + token,
		"token":       token,
		"visitors":    0,
		"leads":       0,
		"conversions": 0,
	}

	rec := Record{
		"id":                 id,
		"created_at":         now,
		"updated_at":         now,
		"first_name":         body["first_name"],
		"last_name":          body["last_name"],
		"email":              email,
		"paypal_email":       nil,
		"state":              string(model.AffiliateStateActive),
		"stripe_customer_id": body["stripe_customer_id"],
		"stripe_account_id":  nil,
		"visitors":           0,
		"leads":              0,
		"conversions":        0,
		"campaign":           s.defaultCampaignSummary(),
		"links":              []any{link},
		"coupon":             nil,
	}

	if err := s.store.Put(Affiliates, rec); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	link["affiliate_id"] = id
	if err := s.store.Put(AffiliateLinks, link); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) updateAffiliate(w http.ResponseWriter, r *http.Request) {
	s.update(w, r, Affiliates, "Affiliate", endpoint.UpdateAffiliate)
}

func (s *Server) affiliateSSO(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rec, err := s.store.Get(Affiliates, id)
	if err != nil {
		notFound(w, "Affiliate", id)
		return
	}

	writeJSON(w, http.StatusOK, Record{
		"sso": Record{
			"url":     ssoBaseURL + "?token=" + uuid.NewString(),
			"expires": s.now().Add(time.Minute).UTC().Format(time.RFC3339),
		},
		"affiliate": Record{
			"id":    rec["id"],
			"email": rec["email"],
		},
	})
}

func (s *Server) listCampaigns(w http.ResponseWriter, r *http.Request) {
	paginate(w, r, s.store.List(Campaigns, nil))
}

func (s *Server) createCampaign(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r, endpoint.CreateCampaign)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	now := s.timestamp()
	rec := Record{
		"id":                                     uuid.NewString(),
		"created_at":                             now,
		"updated_at":                             now,
		"name":                                   body["name"],
		"url":                                    body["url"],
		"private":                                body["private"],
		"private_tokens":                         false,
		"commission_amount_cents":                nil,
		"commission_amount_currency":             nil,
		"minimum_payout_cents":                   body["minimum_payout_cents"],
		"max_commission_period_months":           nil,
		"max_commissions":                        nil,
		"days_before_referrals_expire":           60,
		"days_until_commissions_are_due":         30,
		"affiliate_dashboard_text":               "",
		"custom_reward_description":              "",
		"welcome_text":                           "",
		"customers_visible_to_affiliates":        false,
		"sale_description_visible_to_affiliates": true,
		"parameter_type":                         "query",
		"stripe_coupon_id":                       nil,
		"default":                                false,
		"reward_type":                            body["reward_type"],
		"commission_percent":                     body["commission_percent"],
		"minimum_payout_currency":                "USD",
		"visitors":                               0,
		"leads":                                  0,
		"conversions":                            0,
		"affiliates":                             0,
	}

	if err := s.store.Put(Campaigns, rec); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) updateCampaign(w http.ResponseWriter, r *http.Request) {
	s.update(w, r, Campaigns, "Campaign", endpoint.UpdateCampaign)
}

func (s *Server) listCommissions(w http.ResponseWriter, r *http.Request) {
	affiliateID := r.URL.Query().Get("affiliate_id")
	states := queryList(r, "state")
	now := s.now()

	items := s.store.List(Commissions, func(rec Record) bool {
		if affiliateID != "" && dig(rec, "sale", "affiliate", "id") != affiliateID {
			return false
		}
		return len(states) == 0 || slices.Contains(states, commissionState(rec, now))
	})
	paginate(w, r, items)
}

func (s *Server) updateCommission(w http.ResponseWriter, r *http.Request) {
	s.update(w, r, Commissions, "Commission", endpoint.UpdateCommission)
}

func (s *Server) deleteCommission(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.Delete(Commissions, id); err != nil {
		notFound(w, "Commission", id)
		return
	}
	writeJSON(w, http.StatusOK, Record{"object": "commission", "id": id, "deleted": true})
}

func (s *Server) listPayouts(w http.ResponseWriter, r *http.Request) {
	affiliateID := r.URL.Query().Get("affiliate_id")
	states := queryList(r, "state")

	items := s.store.List(Payouts, func(rec Record) bool {
		if affiliateID != "" && dig(rec, "affiliate", "id") != affiliateID {
			return false
		}
		return len(states) == 0 || slices.Contains(states, fmt.Sprint(rec["state"]))
	})
	paginate(w, r, items)
}

// payPayout ставит выплату в обработку и отмечает входящие в неё комиссии выплаченными.
func (s *Server) payPayout(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	now := s.timestamp()

	var commissionIDs []string
	rec, err := s.store.Update(Payouts, id, func(rec Record) {
		rec["state"] = string(model.PayoutStateProcessing)
		rec["paid_at"] = now
		rec["updated_at"] = now

		items, _ := rec["commissions"].([]any)
		for _, item := range items {
			if c, ok := item.(Record); ok {
				c["paid_at"] = now
				if cid, ok := c["id"].(string); ok {
					commissionIDs = append(commissionIDs, cid)
				}
			}
		}
	})
	if err != nil {
		notFound(w, "Payout", id)
		return
	}

	for _, cid := range commissionIDs {
		_, err := s.store.Update(Commissions, cid, func(c Record) {
			c["paid_at"] = now
			c["updated_at"] = now
		})
		if err != nil && !errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
	}

	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) listReferrals(w http.ResponseWriter, r *http.Request) {
	affiliateID := r.URL.Query().Get("affiliate_id")
	states := queryList(r, "conversion_state")

	items := s.store.List(Referrals, func(rec Record) bool {
		if affiliateID != "" && dig(rec, "affiliate", "id") != affiliateID {
			return false
		}
		return len(states) == 0 || slices.Contains(states, fmt.Sprint(rec["conversion_state"]))
	})
	paginate(w, r, items)
}

func (s *Server) listByAffiliate(resource string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		affiliateID := r.URL.Query().Get("affiliate_id")
		items := s.store.List(resource, func(rec Record) bool {
			return affiliateID == "" || rec["affiliate_id"] == affiliateID
		})
		paginate(w, r, items)
	}
}

func (s *Server) createCoupon(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r, endpoint.CreateAffiliateCoupon)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	affiliateID := body["affiliate_id"].(string)
	id := uuid.NewString()
	rec := Record{
		"id":           id,
		"external_id":  "promo_" + strings.ReplaceAll(id, "-", "")[:12],
		"token":        body["token"],
		"leads":        0,
		"conversions":  0,
		"affiliate_id": affiliateID,
	}

	_, err = s.store.Update(Affiliates, affiliateID, func(a Record) {
		a["coupon"] = clone(rec)
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, "Affiliate not found: "+affiliateID)
		return
	}

	if err := s.store.Put(AffiliateCoupons, rec); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) createLink(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r, endpoint.CreateAffiliateLink)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	affiliateID := body["affiliate_id"].(string)
	token := body["token"].(string)
	link := Record{
		"id":          uuid.NewString(),
		"url":         linkBaseURL + "?via=" + token,
		"token":       token,
		"visitors":    0,
		"leads":       0,
		"conversions": 0,
	}

	_, err = s.store.Update(Affiliates, affiliateID, func(a Record) {
		links, _ := a["links"].([]any)
		a["links"] = append(links, clone(link))
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, "Affiliate not found: "+affiliateID)
		return
	}

	link["affiliate_id"] = affiliateID
	if err := s.store.Put(AffiliateLinks, link); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, link)
}

func (s *Server) updateLink(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	body, err := decodeBody(r, endpoint.UpdateAffiliateLink)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rec, err := s.store.Update(AffiliateLinks, id, func(rec Record) {
		if token, ok := body["token"].(string); ok {
			rec["token"] = token
			rec["url"] = linkBaseURL + "?via=" + token
		}
	})
	if err != nil {
		notFound(w, "Link", id)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// update применяет к записи поля тела запроса, объявленные схемой эндпоинта.
func (s *Server) update(w http.ResponseWriter, r *http.Request, resource, name, alias string) {
	id := chi.URLParam(r, "id")
	if _, err := s.store.Get(resource, id); err != nil {
		notFound(w, name, id)
		return
	}

	body, err := decodeBody(r, alias)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	now := s.timestamp()
	rec, err := s.store.Update(resource, id, func(rec Record) {
		for k, v := range body {
			rec[k] = v
		}
		rec["updated_at"] = now
	})
	if err != nil {
		notFound(w, name, id)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) defaultCampaignSummary() any {
	campaigns := s.store.List(Campaigns, nil)
	if len(campaigns) == 0 {
		return nil
	}

	chosen := campaigns[0]
	for _, c := range campaigns {
		if c["default"] == true {
			chosen = c
			break
		}
	}
	return Record{
		"id":         chosen["id"],
		"created_at": chosen["created_at"],
		"updated_at": chosen["updated_at"],
		"name":       chosen["name"],
	}
}

// decodeBody читает тело в формате формы или JSON и проверяет его схемой тела эндпоинта.
// Поля, не объявленные схемой, отбрасываются.
func decodeBody(r *http.Request, alias string) (map[string]any, error) {
	def, ok := endpoint.Lookup(alias)
	if !ok {
		return nil, fmt.Errorf("unknown endpoint %s", alias)
	}
	param, ok := def.Body()
	if !ok {
		return map[string]any{}, nil
	}

	var body map[string]any
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		if err := dec.Decode(&body); err != nil {
			return nil, fmt.Errorf("invalid JSON body: %w", err)
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("invalid form body: %w", err)
		}
		decoded, err := model.DecodeForm(r.PostForm, param.Schema)
		if err != nil {
			return nil, err
		}
		body = decoded
	}

	if err := param.Schema.Validate(body); err != nil {
		return nil, err
	}

	declared := make(map[string]any, len(body))
	for _, p := range param.Schema.Properties() {
		if v, ok := body[p.Name]; ok {
			declared[p.Name] = v
		}
	}
	return declared, nil
}

func paginate(w http.ResponseWriter, r *http.Request, items []Record) {
	page, err := intQuery(r, "page", 1)
	if err != nil || page < 1 {
		writeError(w, http.StatusBadRequest, "Invalid page")
		return
	}
	limit, err := intQuery(r, "limit", defaultLimit)
	if err != nil || limit < 1 {
		writeError(w, http.StatusBadRequest, "Invalid limit")
		return
	}
	limit = min(limit, maxLimit)

	total := len(items)
	totalPages := max((total+limit-1)/limit, 1)
	if page > totalPages {
		writeError(w, http.StatusBadRequest, "Invalid page")
		return
	}

	start := min((page-1)*limit, total)
	end := min(start+limit, total)
	data := items[start:end]

	var prev, next any
	if page > 1 {
		prev = page - 1
	}
	if page < totalPages {
		next = page + 1
	}

	writeJSON(w, http.StatusOK, Record{
		"pagination": Record{
			"previous_page": prev,
			"current_page":  page,
			"next_page":     next,
			"count":         len(data),
			"limit":         limit,
			"total_pages":   totalPages,
			"total_count":   total,
		},
		"data": data,
	})
}

func intQuery(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

// queryList собирает значения параметра в формах key=a и key[]=a.
func queryList(r *http.Request, key string) []string {
	q := r.URL.Query()
	var out []string
	for _, v := range append(q[key], q[key+"[]"]...) {
		out = append(out, strings.Split(v, ",")...)
	}
	return out
}

func commissionState(rec Record, now time.Time) string {
	if rec["paid_at"] != nil {
		return string(model.CommissionStatePaid)
	}
	if due, ok := rec["due_at"].(string); ok {
		if t, err := time.Parse(time.RFC3339, due); err == nil && !t.After(now) {
			return string(model.CommissionStateDue)
		}
	}
	return string(model.CommissionStatePending)
}

func dig(rec Record, path ...string) any {
	var cur any = rec
	for _, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = m[key]
	}
	return cur
}

func notFound(w http.ResponseWriter, name, id string) {
	writeError(w, http.StatusNotFound, fmt.Sprintf("%s not found: %s", name, id))
}
