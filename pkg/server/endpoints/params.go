package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// parseNumber converts a query or path value to a positive int. Returns
// false for anything that is not a plain positive decimal number.
func parseNumber(raw string) (int, bool) {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// listParams extracts the query, page and limit parameters. Page and
// limit fall back to zero when absent or invalid; the store layer
// normalizes them to its defaults.
func listParams(r *http.Request) (search string, page, limit int) {
	q := r.URL.Query()
	search = q.Get("query")
	page, _ = parseNumber(q.Get("page"))
	limit, _ = parseNumber(q.Get("limit"))
	return search, page, limit
}

// pathID extracts the {id} route variable. Writes a 400 envelope and
// returns false when the value is not a positive number.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	n, ok := parseNumber(mux.Vars(r)["id"])
	if !ok {
		respondWithError(w, http.StatusBadRequest, "id must be a positive number")
		return 0, false
	}
	return int64(n), true
}
