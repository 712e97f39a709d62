package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"weddingrsvp/internal/service"
)

// AdminHandler serves the administrator guest-management API
type AdminHandler struct {
	directory      *service.DirectoryService
	reconciliation *service.ReconciliationService
	backupService  *service.BackupService
}

// NewAdminHandler creates a new admin handler. backupService may be nil.
func NewAdminHandler(directory *service.DirectoryService, reconciliation *service.ReconciliationService, backupService *service.BackupService) *AdminHandler {
	return &AdminHandler{
		directory:      directory,
		reconciliation: reconciliation,
		backupService:  backupService,
	}
}

type addGuestRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	PartyID string `json:"partyId"`
}

type bulkPartyRequest struct {
	Names string `json:"names"`
}

type partyCodeRequest struct {
	Code string `json:"code"`
}

// Aggregate returns the reconciled view of every guest and response
func (h *AdminHandler) Aggregate(w http.ResponseWriter, r *http.Request) {
	agg, err := h.reconciliation.BuildAggregate(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newAggregateView(agg))
}

// ListGuests returns the guest directory with its parties
func (h *AdminHandler) ListGuests(w http.ResponseWriter, r *http.Request) {
	guests, err := h.directory.ListAll()
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newDirectoryView(guests, service.GroupParties(guests)))
}

// AddGuest adds one guest, to a new party or an existing one
func (h *AdminHandler) AddGuest(w http.ResponseWriter, r *http.Request) {
	var req addGuestRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	guest, err := h.directory.AddGuest(req.Name, req.Email, req.PartyID)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, newGuestView(*guest))
}

// CreateParty adds a party from newline or comma separated names
func (h *AdminHandler) CreateParty(w http.ResponseWriter, r *http.Request) {
	var req bulkPartyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	guests, err := h.directory.BulkAddParty(service.ParseBulkNames(req.Names))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, PartyListView{ID: guests[0].PartyID, Members: newGuestViews(guests)})
}

// DeleteGuest removes a guest. Their RSVPs are left in place.
func (h *AdminHandler) DeleteGuest(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.directory.DeleteGuest(id); err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdatePartyCode assigns an administrator-chosen code to a party
func (h *AdminHandler) UpdatePartyCode(w http.ResponseWriter, r *http.Request) {
	var req partyCodeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	partyID := r.PathValue("partyId")

	code, err := h.directory.UpdatePartyCode(partyID, req.Code)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, PartyCodeView{PartyID: partyID, Code: code})
}

// GeneratePartyCode assigns a freshly generated code to a party
func (h *AdminHandler) GeneratePartyCode(w http.ResponseWriter, r *http.Request) {
	partyID := r.PathValue("partyId")

	code, err := h.directory.GeneratePartyCode(partyID)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, PartyCodeView{PartyID: partyID, Code: code})
}

// ExportDatabase streams a JSON backup for download
func (h *AdminHandler) ExportDatabase(w http.ResponseWriter, r *http.Request) {
	if h.backupService == nil {
		respondWithError(w, r, http.StatusNotFound, ErrNotFound, "", nil)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("wedding_rsvp_backup_%s.json", timestamp)
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	if err := h.backupService.ExportToWriter(w); err != nil {
		respondWithError(w, r, http.StatusInternalServerError, "Failed to export database", "Error exporting database", err)
		return
	}

	zerolog.Ctx(r.Context()).Info().Str("admin_id", GetAdminUserID(r.Context())).Msg("Database exported")
}
