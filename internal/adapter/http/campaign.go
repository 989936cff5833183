package httpadapter

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"crowdfund/internal/core/domain"
)

// handleCreateCampaign creates a campaign owned by the caller. The body
// holds the target and the deadline in Unix seconds. It responds with
// HTTP 201 and the campaign view on success.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	owner, err := caller(r)
	if err != nil {
		h.writeError(w, "create campaign", err)
		return
	}
	var req createCampaignRequest
	if err = decode(r, &req); err != nil {
		h.writeError(w, "create campaign", err)
		return
	}
	view, err := h.svc.CreateCampaign(r.Context(), owner, req.Target, req.Deadline)
	if err != nil {
		h.writeError(w, "create campaign", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, view)
}

// handleGetCampaign returns the configuration, status and current funds of
// a campaign. Anyone may read it.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, "get campaign", err)
		return
	}
	view, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, "get campaign", err)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, "status", err)
		return
	}
	status, err := h.svc.Status(r.Context(), id)
	if err != nil {
		h.writeError(w, "status", err)
		return
	}
	h.writeJSON(w, http.StatusOK, statusResponse{Status: status.String()})
}

func (h *Handler) handleDeposit(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, "deposit", err)
		return
	}
	donor := domain.Identity(chi.URLParam(r, "donor"))
	amount, err := h.svc.Deposit(r.Context(), id, donor)
	if err != nil {
		h.writeError(w, "deposit", err)
		return
	}
	h.writeJSON(w, http.StatusOK, depositResponse{Donor: donor, Deposit: amount})
}

func (h *Handler) handleTransfers(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, "transfers", err)
		return
	}
	transfers, err := h.svc.Transfers(r.Context(), id)
	if err != nil {
		h.writeError(w, "transfers", err)
		return
	}
	resp := make([]transferResponse, 0, len(transfers))
	for _, t := range transfers {
		resp = append(resp, transferResponse{
			ID:        t.ID,
			Recipient: t.Recipient,
			Amount:    t.Amount,
			Kind:      t.Kind,
			CreatedAt: t.CreatedAt.Format(time.RFC3339),
		})
	}
	h.writeJSON(w, http.StatusOK, resp)
}

type settingFunc func(ctx context.Context, id uuid.UUID, caller domain.Identity, value domain.Amount) error

// handleSetting returns a handler for one of the owner-only settings. The
// body is {"value": n}. It responds with HTTP 204 on success.
func (h *Handler) handleSetting(set settingFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		who, err := caller(r)
		if err != nil {
			h.writeError(w, "set setting", err)
			return
		}
		id, err := campaignID(r)
		if err != nil {
			h.writeError(w, "set setting", err)
			return
		}
		var req settingRequest
		if err = decode(r, &req); err != nil {
			h.writeError(w, "set setting", err)
			return
		}
		if err = set(r.Context(), id, who, req.Value); err != nil {
			h.writeError(w, "set setting", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// handleFund deposits {"amount": n} from the caller. It responds with
// HTTP 204 on success.
func (h *Handler) handleFund(w http.ResponseWriter, r *http.Request) {
	who, err := caller(r)
	if err != nil {
		h.writeError(w, "fund", err)
		return
	}
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, "fund", err)
		return
	}
	var req fundRequest
	if err = decode(r, &req); err != nil {
		h.writeError(w, "fund", err)
		return
	}
	if err = h.svc.Fund(r.Context(), id, who, req.Amount); err != nil {
		h.writeError(w, "fund", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleClaim pays out to the caller and reports the amount transferred.
func (h *Handler) handleClaim(w http.ResponseWriter, r *http.Request) {
	who, err := caller(r)
	if err != nil {
		h.writeError(w, "claim", err)
		return
	}
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, "claim", err)
		return
	}
	transferred, err := h.svc.Claim(r.Context(), id, who)
	if err != nil {
		h.writeError(w, "claim", err)
		return
	}
	h.writeJSON(w, http.StatusOK, claimResponse{Transferred: transferred})
}
