package endpoints

import (
	"net/http"

	"townclerk/pkg/audit"
	"townclerk/pkg/server"
	"townclerk/pkg/server/store"
)

// RegisterMailEndpoints registers the incoming mail endpoints. The
// next-id route is registered before the {id} routes so gorilla mux
// matches it literally.
func RegisterMailEndpoints(s *server.Server) {
	mail := s.Stores.Mail

	s.Router.HandleFunc("/api/mail-in", handleListMail(mail)).Methods("GET")
	s.Router.HandleFunc("/api/mail-in", handleCreateMail(mail)).Methods("POST")
	s.Router.HandleFunc("/api/mail-in/next-id", handleMailNextID(mail)).Methods("GET")
	s.Router.HandleFunc("/api/mail-in/{id}", handleFetchMail(mail)).Methods("GET")
	s.Router.HandleFunc("/api/mail-in/{id}", handleUpdateMail(mail)).Methods("PUT")
	s.Router.HandleFunc("/api/mail-in/{id}", handleDeleteMail(mail)).Methods("DELETE")
	s.Router.HandleFunc("/api/mail-in/{id}/mark-read", handleMarkMailRead(mail)).Methods("PUT")
}

func handleListMail(mail store.MailStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		search, page, limit := listParams(r)
		items, pagination, err := mail.ListMail(search, page, limit)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithList(w, items, pagination)
	}
}

func handleFetchMail(mail store.MailStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		record, err := mail.FetchMail(id)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithData(w, record)
	}
}

func handleCreateMail(mail store.MailStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input store.MailInput
		if !decodeBody(w, r, &input) {
			return
		}
		record, err := mail.CreateMail(input)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		auditRecord(r, "mail-in", record.ID, "create")
		respondWithCreated(w, record)
	}
}

func handleUpdateMail(mail store.MailStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		var update store.MailUpdate
		if !decodeBody(w, r, &update) {
			return
		}
		record, err := mail.UpdateMail(id, update)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		auditRecord(r, "mail-in", id, "update")
		respondWithData(w, record)
	}
}

func handleDeleteMail(mail store.MailStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		if err := mail.DeleteMail(id); err != nil {
			respondWithStoreError(w, err)
			return
		}
		auditRecord(r, "mail-in", id, "delete")
		respondWithData(w, map[string]int64{"id": id})
	}
}

func handleMarkMailRead(mail store.MailStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		var body struct {
			UserID int64 `json:"userId"`
		}
		if !decodeBody(w, r, &body) {
			return
		}
		read, err := mail.MarkRead(id, body.UserID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		audit.Log(audit.MailReadEvent{Actor: actorName(r), MailID: id, UserID: body.UserID})
		respondWithData(w, read)
	}
}

func handleMailNextID(mail store.MailStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		next, err := mail.NextID()
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithData(w, next)
	}
}
