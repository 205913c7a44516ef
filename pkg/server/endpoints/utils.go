package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"

	"townclerk/pkg/audit"
	"townclerk/pkg/identity"
	"townclerk/pkg/server/store"
)

// actorName resolves the acting session's username for audit events,
// falling back to "anonymous" for unauthenticated requests.
func actorName(r *http.Request) string {
	if id, ok := identity.Get(r.Context()); ok {
		return id.Username
	}
	return "anonymous"
}

// auditRecord emits a record-change event for a mutating handler.
func auditRecord(r *http.Request, resource string, recordID int64, action string) {
	audit.Log(audit.RecordEvent{
		Actor:    actorName(r),
		Resource: resource,
		RecordID: recordID,
		Action:   action,
		Success:  true,
	})
}

// envelope is the uniform response shape for API endpoints. Message is
// set on failures, Data on successes.
type envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// listPayload pairs a result page with its pagination block.
type listPayload struct {
	Items      interface{}      `json:"data"`
	Pagination store.Pagination `json:"pagination"`
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

func respondWithData(w http.ResponseWriter, data interface{}) {
	respondWithJSON(w, http.StatusOK, envelope{Success: true, Data: data})
}

func respondWithCreated(w http.ResponseWriter, data interface{}) {
	respondWithJSON(w, http.StatusCreated, envelope{Success: true, Data: data})
}

func respondWithList(w http.ResponseWriter, items interface{}, pagination store.Pagination) {
	respondWithJSON(w, http.StatusOK, envelope{
		Success: true,
		Data:    listPayload{Items: items, Pagination: pagination},
	})
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, envelope{Success: false, Message: message})
}

// respondWithStoreError maps the store error taxonomy onto HTTP statuses.
func respondWithStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrConflict):
		respondWithError(w, http.StatusConflict, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed request body")
		return false
	}
	return true
}
