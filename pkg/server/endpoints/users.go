package endpoints

import (
	"net/http"

	"townclerk/pkg/server"
	"townclerk/pkg/server/store"
)

// RegisterUsersEndpoints registers the municipal agent endpoints
func RegisterUsersEndpoints(s *server.Server) {
	users := s.Stores.Users

	s.Router.HandleFunc("/api/users", handleListUsers(users)).Methods("GET")
	s.Router.HandleFunc("/api/users", handleCreateUser(users)).Methods("POST")
	s.Router.HandleFunc("/api/users/{id}", handleFetchUser(users)).Methods("GET")
	s.Router.HandleFunc("/api/users/{id}", handleUpdateUser(users)).Methods("PUT")
	s.Router.HandleFunc("/api/users/{id}", handleDeleteUser(users)).Methods("DELETE")
}

func handleListUsers(users store.UsersStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		search, page, limit := listParams(r)
		items, pagination, err := users.ListUsers(search, page, limit)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithList(w, items, pagination)
	}
}

func handleFetchUser(users store.UsersStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		user, err := users.FetchUser(id)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithData(w, user)
	}
}

func handleCreateUser(users store.UsersStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input store.UserInput
		if !decodeBody(w, r, &input) {
			return
		}
		user, err := users.CreateUser(input)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		auditRecord(r, "users", user.ID, "create")
		respondWithCreated(w, user)
	}
}

func handleUpdateUser(users store.UsersStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		var update store.UserUpdate
		if !decodeBody(w, r, &update) {
			return
		}
		user, err := users.UpdateUser(id, update)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		auditRecord(r, "users", id, "update")
		respondWithData(w, user)
	}
}

func handleDeleteUser(users store.UsersStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		if err := users.DeleteUser(id); err != nil {
			respondWithStoreError(w, err)
			return
		}
		auditRecord(r, "users", id, "delete")
		respondWithData(w, map[string]int64{"id": id})
	}
}
