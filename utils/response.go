package utils

import (
	"encoding/json"
	"net/http"

	"mergington-activities/models"
)

// RespondWithError writes error as the JSON body. The status line is already
// sent when encoding runs, so an encode failure cannot be reported.
func RespondWithError(w http.ResponseWriter, status int, error models.Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(error)
}

func ResponseJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
