package handler

import (
	"encoding/json"
	"net/http"
)

// Handler answers the API root with a short service banner.
func Handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	response := map[string]interface{}{
		"status":  "ok",
		"message": "Furniture Shop API",
		"path":    r.URL.Path,
		"docs":    "/swagger/index.html",
	}

	_ = json.NewEncoder(w).Encode(response)
}
