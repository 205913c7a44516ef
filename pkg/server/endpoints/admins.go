package endpoints

import (
	"net/http"

	"townclerk/pkg/server"
	"townclerk/pkg/server/store"
)

// RegisterAdminsEndpoints registers the admin account endpoints
func RegisterAdminsEndpoints(s *server.Server) {
	admins := s.Stores.Admins

	s.Router.HandleFunc("/api/admins", handleListAdmins(admins)).Methods("GET")
	s.Router.HandleFunc("/api/admins", handleCreateAdmin(admins)).Methods("POST")
	s.Router.HandleFunc("/api/admins/{id}", handleFetchAdmin(admins)).Methods("GET")
	s.Router.HandleFunc("/api/admins/{id}", handleUpdateAdmin(admins)).Methods("PUT")
	s.Router.HandleFunc("/api/admins/{id}", handleDeleteAdmin(admins)).Methods("DELETE")
}

func handleListAdmins(admins store.AdminsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		search, page, limit := listParams(r)
		items, pagination, err := admins.ListAdmins(search, page, limit)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithList(w, items, pagination)
	}
}

func handleFetchAdmin(admins store.AdminsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		admin, err := admins.FetchAdmin(id)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithData(w, admin)
	}
}

func handleCreateAdmin(admins store.AdminsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input store.AdminInput
		if !decodeBody(w, r, &input) {
			return
		}
		admin, err := admins.CreateAdmin(input)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		auditRecord(r, "admins", admin.ID, "create")
		respondWithCreated(w, admin)
	}
}

func handleUpdateAdmin(admins store.AdminsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		var update store.AdminUpdate
		if !decodeBody(w, r, &update) {
			return
		}
		admin, err := admins.UpdateAdmin(id, update)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		auditRecord(r, "admins", id, "update")
		respondWithData(w, admin)
	}
}

func handleDeleteAdmin(admins store.AdminsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		if err := admins.DeleteAdmin(id); err != nil {
			respondWithStoreError(w, err)
			return
		}
		auditRecord(r, "admins", id, "delete")
		respondWithData(w, map[string]int64{"id": id})
	}
}
