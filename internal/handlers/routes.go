package handlers

import "net/http"

// RegisterRoutes mounts the guest and admin APIs on mux
func RegisterRoutes(mux *http.ServeMux, middleware *Middleware, rsvpHandler *RSVPHandler, adminHandler *AdminHandler) {
	// Guest flow
	mux.HandleFunc("GET /api/rsvp/session", rsvpHandler.GetSession)
	mux.HandleFunc("POST /api/rsvp/search", middleware.CSRFProtect(rsvpHandler.Search))
	mux.HandleFunc("POST /api/rsvp/members/{id}/select", middleware.CSRFProtect(rsvpHandler.SelectMember))
	mux.HandleFunc("POST /api/rsvp/members/{id}/deselect", middleware.CSRFProtect(rsvpHandler.DeselectMember))
	mux.HandleFunc("PUT /api/rsvp/members/{id}", middleware.CSRFProtect(rsvpHandler.UpdateMember))
	mux.HandleFunc("PUT /api/rsvp/message", middleware.CSRFProtect(rsvpHandler.UpdateMessage))
	mux.HandleFunc("POST /api/rsvp/back", middleware.CSRFProtect(rsvpHandler.Back))
	mux.HandleFunc("POST /api/rsvp/submit", middleware.CSRFProtect(rsvpHandler.Submit))

	// Admin routes
	mux.HandleFunc("GET /api/admin/aggregate", middleware.RequireAdmin(adminHandler.Aggregate))
	mux.HandleFunc("GET /api/admin/guests", middleware.RequireAdmin(adminHandler.ListGuests))
	mux.HandleFunc("POST /api/admin/guests", middleware.RequireAdmin(adminHandler.AddGuest))
	mux.HandleFunc("DELETE /api/admin/guests/{id}", middleware.RequireAdmin(adminHandler.DeleteGuest))
	mux.HandleFunc("POST /api/admin/parties", middleware.RequireAdmin(adminHandler.CreateParty))
	mux.HandleFunc("PUT /api/admin/parties/{partyId}/code", middleware.RequireAdmin(adminHandler.UpdatePartyCode))
	mux.HandleFunc("POST /api/admin/parties/{partyId}/code", middleware.RequireAdmin(adminHandler.GeneratePartyCode))
	mux.HandleFunc("GET /api/admin/export", middleware.RequireAdmin(adminHandler.ExportDatabase))
}
