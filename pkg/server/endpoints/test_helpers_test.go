package endpoints

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// decodeEnvelope parses a recorded response body into the response
// envelope, returning the data payload as raw JSON for further decoding.
func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) (success bool, message string, data json.RawMessage) {
	t.Helper()

	var body struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Success, body.Message, body.Data
}
