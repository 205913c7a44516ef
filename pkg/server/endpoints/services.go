package endpoints

import (
	"net/http"

	"townclerk/pkg/server"
	"townclerk/pkg/server/store"
)

// RegisterServicesEndpoints registers the organizational unit endpoints
func RegisterServicesEndpoints(s *server.Server) {
	services := s.Stores.Services

	s.Router.HandleFunc("/api/services", handleListServices(services)).Methods("GET")
	s.Router.HandleFunc("/api/services", handleCreateService(services)).Methods("POST")
	s.Router.HandleFunc("/api/services/{id}", handleFetchService(services)).Methods("GET")
	s.Router.HandleFunc("/api/services/{id}", handleUpdateService(services)).Methods("PUT")
	s.Router.HandleFunc("/api/services/{id}", handleDeleteService(services)).Methods("DELETE")
}

func handleListServices(services store.ServicesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		search, page, limit := listParams(r)
		items, pagination, err := services.ListServices(search, page, limit)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithList(w, items, pagination)
	}
}

func handleFetchService(services store.ServicesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		service, err := services.FetchService(id)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithData(w, service)
	}
}

func handleCreateService(services store.ServicesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input store.ServiceInput
		if !decodeBody(w, r, &input) {
			return
		}
		service, err := services.CreateService(input)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		auditRecord(r, "services", service.ID, "create")
		respondWithCreated(w, service)
	}
}

func handleUpdateService(services store.ServicesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		var update store.ServiceUpdate
		if !decodeBody(w, r, &update) {
			return
		}
		service, err := services.UpdateService(id, update)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		auditRecord(r, "services", id, "update")
		respondWithData(w, service)
	}
}

func handleDeleteService(services store.ServicesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		if err := services.DeleteService(id); err != nil {
			respondWithStoreError(w, err)
			return
		}
		auditRecord(r, "services", id, "delete")
		respondWithData(w, map[string]int64{"id": id})
	}
}
