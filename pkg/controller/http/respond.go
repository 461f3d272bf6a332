package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/strat-lab/cogward/pkg/domain/interfaces"
	"github.com/strat-lab/cogward/pkg/utils/errutil"
	"github.com/strat-lab/cogward/pkg/utils/logging"
)

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Default().Error("failed to encode response", "error", err)
	}
}

// respondError maps domain errors onto HTTP status codes. Only a missing
// analysis is a client error; everything else is a server fault.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, interfaces.ErrAnalysisNotFound) {
		status = http.StatusNotFound
	}
	errutil.HandleHTTP(r.Context(), w, err, status)
}
