package endpoints

import (
	"net/http"

	"townclerk/pkg/server"
	"townclerk/pkg/server/store"
)

// RegisterCouncilEndpoints registers the council member endpoints
func RegisterCouncilEndpoints(s *server.Server) {
	council := s.Stores.Council

	s.Router.HandleFunc("/api/council-members", handleListCouncilMembers(council)).Methods("GET")
	s.Router.HandleFunc("/api/council-members", handleCreateCouncilMember(council)).Methods("POST")
	s.Router.HandleFunc("/api/council-members/{id}", handleFetchCouncilMember(council)).Methods("GET")
	s.Router.HandleFunc("/api/council-members/{id}", handleUpdateCouncilMember(council)).Methods("PUT")
	s.Router.HandleFunc("/api/council-members/{id}", handleDeleteCouncilMember(council)).Methods("DELETE")
}

func handleListCouncilMembers(council store.CouncilStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		search, page, limit := listParams(r)
		items, pagination, err := council.ListMembers(search, page, limit)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithList(w, items, pagination)
	}
}

func handleFetchCouncilMember(council store.CouncilStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		member, err := council.FetchMember(id)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithData(w, member)
	}
}

func handleCreateCouncilMember(council store.CouncilStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input store.CouncilMemberInput
		if !decodeBody(w, r, &input) {
			return
		}
		member, err := council.CreateMember(input)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		auditRecord(r, "council-members", member.ID, "create")
		respondWithCreated(w, member)
	}
}

func handleUpdateCouncilMember(council store.CouncilStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		var update store.CouncilMemberUpdate
		if !decodeBody(w, r, &update) {
			return
		}
		member, err := council.UpdateMember(id, update)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		auditRecord(r, "council-members", id, "update")
		respondWithData(w, member)
	}
}

func handleDeleteCouncilMember(council store.CouncilStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		if err := council.DeleteMember(id); err != nil {
			respondWithStoreError(w, err)
			return
		}
		auditRecord(r, "council-members", id, "delete")
		respondWithData(w, map[string]int64{"id": id})
	}
}
