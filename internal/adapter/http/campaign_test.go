package httpadapter

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
	"crowdfund/internal/core/port/mocks"
)

func newTestHandler(t *testing.T) (*mocks.MockCampaignUseCase, http.Handler) {
	t.Helper()
	svc := mocks.NewMockCampaignUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return svc, NewHandler(svc, logger).Router()
}

func do(h http.Handler, method, path, caller, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if caller != "" {
		req.Header.Set(CallerHeader, caller)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCreateCampaign(t *testing.T) {
	svc, h := newTestHandler(t)
	id := uuid.New()
	svc.EXPECT().
		CreateCampaign(mock.Anything, domain.Identity("owner"), domain.Amount(1000), domain.Timestamp(2000)).
		Return(&port.CampaignView{ID: id, Owner: "owner", Target: 1000, Deadline: 2000, Status: "funding_period"}, nil)

	rec := do(h, http.MethodPost, "/api/v1/campaigns", "owner", `{"target":1000,"deadline":2000}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var view port.CampaignView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
	assert.Equal(t, id, view.ID)
	assert.Equal(t, "funding_period", view.Status)
}

func TestCreateCampaignRequiresCaller(t *testing.T) {
	_, h := newTestHandler(t)
	rec := do(h, http.MethodPost, "/api/v1/campaigns", "", `{"target":1000,"deadline":2000}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateCampaignInvalidJSON(t *testing.T) {
	_, h := newTestHandler(t)
	rec := do(h, http.MethodPost, "/api/v1/campaigns", "owner", `{"target":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCampaignInvalidID(t *testing.T) {
	_, h := newTestHandler(t)
	rec := do(h, http.MethodGet, "/api/v1/campaigns/not-a-uuid", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStatus(t *testing.T) {
	svc, h := newTestHandler(t)
	id := uuid.New()
	svc.EXPECT().Status(mock.Anything, id).Return(domain.StatusFailed, nil)

	rec := do(h, http.MethodGet, "/api/v1/campaigns/"+id.String()+"/status", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"failed"}`, rec.Body.String())
}

func TestDeposit(t *testing.T) {
	svc, h := newTestHandler(t)
	id := uuid.New()
	svc.EXPECT().Deposit(mock.Anything, id, domain.Identity("alice")).Return(42, nil)

	rec := do(h, http.MethodGet, "/api/v1/campaigns/"+id.String()+"/deposits/alice", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"donor":"alice","deposit":42}`, rec.Body.String())
}

func TestSettings(t *testing.T) {
	id := uuid.New()
	routes := map[string]func(*mocks.MockCampaignUseCase_Expecter) *mock.Call{
		"limit": func(e *mocks.MockCampaignUseCase_Expecter) *mock.Call {
			return e.SetLimit(mock.Anything, id, domain.Identity("owner"), domain.Amount(7)).Call
		},
		"limit-per-donor": func(e *mocks.MockCampaignUseCase_Expecter) *mock.Call {
			return e.SetLimitPerDonor(mock.Anything, id, domain.Identity("owner"), domain.Amount(7)).Call
		},
		"minimum-per-donation": func(e *mocks.MockCampaignUseCase_Expecter) *mock.Call {
			return e.SetMinimumPerDonation(mock.Anything, id, domain.Identity("owner"), domain.Amount(7)).Call
		},
	}
	for route, expect := range routes {
		t.Run(route, func(t *testing.T) {
			svc, h := newTestHandler(t)
			expect(svc.EXPECT()).Return(nil).Once()

			rec := do(h, http.MethodPut, fmt.Sprintf("/api/v1/campaigns/%s/%s", id, route), "owner", `{"value":7}`)
			assert.Equal(t, http.StatusNoContent, rec.Code)
		})
	}
}

func TestFundErrors(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{nil, http.StatusNoContent},
		{domain.ErrFundingClosed, http.StatusConflict},
		{domain.ErrBelowMinimumDonation, http.StatusUnprocessableEntity},
		{domain.ErrOverallLimitExceeded, http.StatusUnprocessableEntity},
		{domain.ErrPerDonorLimitExceeded, http.StatusUnprocessableEntity},
		{domain.ErrCampaignNotFound, http.StatusNotFound},
		{fmt.Errorf("begin tx: %w", io.ErrUnexpectedEOF), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		name := "ok"
		if tt.err != nil {
			name = tt.err.Error()
		}
		t.Run(name, func(t *testing.T) {
			svc, h := newTestHandler(t)
			id := uuid.New()
			svc.EXPECT().Fund(mock.Anything, id, domain.Identity("alice"), domain.Amount(10)).Return(tt.err)

			rec := do(h, http.MethodPost, "/api/v1/campaigns/"+id.String()+"/fund", "alice", `{"amount":10}`)
			assert.Equal(t, tt.code, rec.Code)
			if tt.code == http.StatusInternalServerError {
				assert.JSONEq(t, `{"error":"internal error"}`, rec.Body.String())
			}
		})
	}
}

func TestClaim(t *testing.T) {
	svc, h := newTestHandler(t)
	id := uuid.New()
	svc.EXPECT().Claim(mock.Anything, id, domain.Identity("owner")).Return(1100, nil)

	rec := do(h, http.MethodPost, "/api/v1/campaigns/"+id.String()+"/claim", "owner", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"transferred":1100}`, rec.Body.String())
}

func TestClaimErrors(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{domain.ErrClaimBeforeDeadline, http.StatusConflict},
		{domain.ErrUnauthorized, http.StatusForbidden},
		{fmt.Errorf("%w: %w", domain.ErrTransferFailed, domain.ErrRecipientRejected), http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			svc, h := newTestHandler(t)
			id := uuid.New()
			svc.EXPECT().Claim(mock.Anything, id, domain.Identity("bob")).Return(0, tt.err)

			rec := do(h, http.MethodPost, "/api/v1/campaigns/"+id.String()+"/claim", "bob", "")
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}
