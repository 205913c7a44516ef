package endpoints

import (
	"net/http"

	"townclerk/pkg/server"
	"townclerk/pkg/server/store"
)

// RegisterContactsEndpoints registers the inbound and outbound contact
// endpoints. The two namespaces share request and response shapes but
// are stored separately.
func RegisterContactsEndpoints(s *server.Server) {
	in := s.Stores.ContactsIn
	out := s.Stores.ContactsOut

	s.Router.HandleFunc("/api/contacts-in", handleListContactsIn(in)).Methods("GET")
	s.Router.HandleFunc("/api/contacts-in", handleCreateContactIn(in)).Methods("POST")
	s.Router.HandleFunc("/api/contacts-in/{id}", handleFetchContactIn(in)).Methods("GET")
	s.Router.HandleFunc("/api/contacts-in/{id}", handleUpdateContactIn(in)).Methods("PUT")
	s.Router.HandleFunc("/api/contacts-in/{id}", handleDeleteContactIn(in)).Methods("DELETE")

	s.Router.HandleFunc("/api/contacts-out", handleListContactsOut(out)).Methods("GET")
	s.Router.HandleFunc("/api/contacts-out", handleCreateContactOut(out)).Methods("POST")
	s.Router.HandleFunc("/api/contacts-out/{id}", handleFetchContactOut(out)).Methods("GET")
	s.Router.HandleFunc("/api/contacts-out/{id}", handleUpdateContactOut(out)).Methods("PUT")
	s.Router.HandleFunc("/api/contacts-out/{id}", handleDeleteContactOut(out)).Methods("DELETE")
}

func handleListContactsIn(contacts store.ContactsInStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		search, page, limit := listParams(r)
		items, pagination, err := contacts.ListContacts(search, page, limit)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithList(w, items, pagination)
	}
}

func handleFetchContactIn(contacts store.ContactsInStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		contact, err := contacts.FetchContact(id)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithData(w, contact)
	}
}

func handleCreateContactIn(contacts store.ContactsInStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input store.ContactInput
		if !decodeBody(w, r, &input) {
			return
		}
		contact, err := contacts.CreateContact(input)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		auditRecord(r, "contacts-in", contact.ID, "create")
		respondWithCreated(w, contact)
	}
}

func handleUpdateContactIn(contacts store.ContactsInStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		var update store.ContactUpdate
		if !decodeBody(w, r, &update) {
			return
		}
		contact, err := contacts.UpdateContact(id, update)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		auditRecord(r, "contacts-in", id, "update")
		respondWithData(w, contact)
	}
}

func handleDeleteContactIn(contacts store.ContactsInStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		if err := contacts.DeleteContact(id); err != nil {
			respondWithStoreError(w, err)
			return
		}
		auditRecord(r, "contacts-in", id, "delete")
		respondWithData(w, map[string]int64{"id": id})
	}
}

func handleListContactsOut(contacts store.ContactsOutStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		search, page, limit := listParams(r)
		items, pagination, err := contacts.ListContacts(search, page, limit)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithList(w, items, pagination)
	}
}

func handleFetchContactOut(contacts store.ContactsOutStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		contact, err := contacts.FetchContact(id)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithData(w, contact)
	}
}

func handleCreateContactOut(contacts store.ContactsOutStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input store.ContactInput
		if !decodeBody(w, r, &input) {
			return
		}
		contact, err := contacts.CreateContact(input)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		auditRecord(r, "contacts-out", contact.ID, "create")
		respondWithCreated(w, contact)
	}
}

func handleUpdateContactOut(contacts store.ContactsOutStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		var update store.ContactUpdate
		if !decodeBody(w, r, &update) {
			return
		}
		contact, err := contacts.UpdateContact(id, update)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		auditRecord(r, "contacts-out", id, "update")
		respondWithData(w, contact)
	}
}

func handleDeleteContactOut(contacts store.ContactsOutStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		if err := contacts.DeleteContact(id); err != nil {
			respondWithStoreError(w, err)
			return
		}
		auditRecord(r, "contacts-out", id, "delete")
		respondWithData(w, map[string]int64{"id": id})
	}
}
