package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"crowdfund/internal/core/domain"
)

// CallerHeader carries the identity of the party invoking an operation.
const CallerHeader = "X-Caller-ID"

var (
	errMissingCaller = errors.New("missing caller identity")
	errInvalidID     = errors.New("invalid campaign id")
	errInvalidJSON   = errors.New("invalid JSON")
)

type createCampaignRequest struct {
	Target   domain.Amount    `json:"target"`
	Deadline domain.Timestamp `json:"deadline"`
}

type settingRequest struct {
	Value domain.Amount `json:"value"`
}

type fundRequest struct {
	Amount domain.Amount `json:"amount"`
}

type statusResponse struct {
	Status string `json:"status"`
}

type depositResponse struct {
	Donor   domain.Identity `json:"donor"`
	Deposit domain.Amount   `json:"deposit"`
}

type claimResponse struct {
	Transferred domain.Amount `json:"transferred"`
}

type transferResponse struct {
	ID        uuid.UUID           `json:"id"`
	Recipient domain.Identity     `json:"recipient"`
	Amount    domain.Amount       `json:"amount"`
	Kind      domain.TransferKind `json:"kind"`
	CreatedAt string              `json:"created_at"`
}

func caller(r *http.Request) (domain.Identity, error) {
	id := r.Header.Get(CallerHeader)
	if id == "" {
		return "", errMissingCaller
	}
	return domain.Identity(id), nil
}

func campaignID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, errInvalidID
	}
	return id, nil
}

func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errInvalidJSON
	}
	return nil
}
