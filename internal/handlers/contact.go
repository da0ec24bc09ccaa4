package handlers

import (
	"net/http"
	"strings"

	"mosaic-media/internal/models"
)

func validateSubmission(s *models.ContactSubmission) string {
	missing := firstMissing(map[string]string{
		"firstName":   s.FirstName,
		"lastName":    s.LastName,
		"phoneNumber": s.PhoneNumber,
		"email":       s.Email,
		"message":     s.Message,
	}, "firstName", "lastName", "phoneNumber", "email", "message")
	if missing != "" {
		return missing + " is required"
	}

	if !ValidPhone(s.PhoneNumber) {
		return "phone number must be 10 digits starting with 6-9"
	}
	if !strings.Contains(s.Email, "@") {
		return "a valid email is required"
	}
	return ""
}

// SubmitContact is the JSON intake used by the contact form.
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var s models.ContactSubmission
	if err := decodeJSON(r, &s); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.FirstName = strings.TrimSpace(s.FirstName)
	s.LastName = strings.TrimSpace(s.LastName)
	s.Email = strings.TrimSpace(s.Email)

	if msg := validateSubmission(&s); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	if err := h.Store.CreateContactSubmission(&s); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to save submission")
		return
	}

	respond(w, http.StatusCreated, []models.ContactSubmission{s})
}

func (h *Handler) ListContactSubmissions(w http.ResponseWriter, r *http.Request) {
	submissions, err := h.Store.ListContactSubmissions()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to fetch submissions")
		return
	}
	respond(w, http.StatusOK, submissions)
}

func (h *Handler) DeleteContactSubmission(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Store.DeleteContactSubmission(id); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete submission")
		return
	}

	respond(w, http.StatusOK, map[string]any{"deleted": id})
}
