package endpoints

import (
	"net/http"

	"townclerk/pkg/config"
	"townclerk/pkg/server"
	"townclerk/pkg/server/middleware"
)

// WhoamiResponse describes the session behind the current request
type WhoamiResponse struct {
	AdminID     int64  `json:"adminId"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName,omitempty"`
	Role        string `json:"role"`
	ClientIP    string `json:"clientIp,omitempty"`
}

// RegisterWhoamiEndpoint registers the /api/whoami endpoint
func RegisterWhoamiEndpoint(s *server.Server) {
	guard := middleware.NewSessionGuard(s.Sessions, config.Get().SessionCookieName)

	s.Router.HandleFunc("/api/whoami", handleWhoami(guard)).Methods("GET")
}

func handleWhoami(guard *middleware.SessionGuard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := guard.Resolve(r)
		if id == nil {
			respondWithError(w, http.StatusUnauthorized, "no active session")
			return
		}

		respondWithData(w, WhoamiResponse{
			AdminID:     id.AdminID,
			Username:    id.Username,
			DisplayName: id.DisplayName,
			Role:        id.Role.String(),
			ClientIP:    clientIP(r),
		})
	}
}
