package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/andybalholm/brotli"
)

// writeBody writes body with brotli or gzip encoding when the client accepts
// one of them.
func writeBody(w http.ResponseWriter, r *http.Request, status int, contentType string, body []byte) error {
	w.Header().Set("Content-Type", contentType)
	cw := brotli.HTTPCompressor(w, r)
	w.WriteHeader(status)
	if _, err := cw.Write(body); err != nil {
		cw.Close()
		return err
	}
	return cw.Close()
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return err
	}
	return writeBody(w, r, status, "application/json; charset=utf-8", body)
}

type errorBody struct {
	Error string `json:"error"`
}
