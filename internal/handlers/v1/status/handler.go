package status

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/BojanNestorovic/WalletApp/internal/logging"
)

type Handler struct {
	version string
}

func NewHandler(version string) Handler {
	return Handler{version: version}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != "GET" {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"version": h.version,
	})
}
