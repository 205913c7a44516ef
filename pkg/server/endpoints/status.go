package endpoints

import (
	"net/http"
	"os"

	"townclerk/pkg/server"
	"townclerk/pkg/server/store"
)

// HealthResponse represents the response from /health
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Version  string `json:"version"`
}

// RegisterStatusEndpoints registers the health endpoint
func RegisterStatusEndpoints(s *server.Server) {
	s.Router.HandleFunc("/health", handleHealth(s.Stores.Health)).Methods("GET")
}

func handleHealth(health store.HealthStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version := os.Getenv("CLERK_VERSION_DISPLAY")
		if version == "" {
			version = "0.1.0"
		}

		if err := health.CheckConnectivity(); err != nil {
			respondWithJSON(w, http.StatusServiceUnavailable, envelope{
				Success: false,
				Message: "database unreachable",
				Data:    HealthResponse{Status: "degraded", Database: "down", Version: version},
			})
			return
		}

		respondWithData(w, HealthResponse{Status: "ok", Database: "up", Version: version})
	}
}
