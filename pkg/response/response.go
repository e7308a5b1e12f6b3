// Package response centralises JSON response writing so handlers and
// middleware produce consistent bodies.
//
// The API keeps the wire shapes of the service this one replaces: guard
// failures are `{"message": ...}`, handler failures are
// `{"success": false, "error": ...}`, and successful mutations are
// `{"success": true, ...}`.
package response

import (
	"encoding/json"
	"net/http"
)

// JSON writes v as a JSON body with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// Message writes `{"message": msg}` with the given status. Used by the
// authorization guards.
func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"message": msg})
}

// Fail writes `{"success": false, "error": errMsg}` with the given status.
func Fail(w http.ResponseWriter, status int, errMsg string) {
	JSON(w, status, map[string]interface{}{"success": false, "error": errMsg})
}

// InvalidID writes the 400 body clients already expect for malformed
// resource identifiers.
func InvalidID(w http.ResponseWriter) {
	JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid ID"})
}

// NotFound writes a 404 `{"error": "Not found"}`.
func NotFound(w http.ResponseWriter) {
	JSON(w, http.StatusNotFound, map[string]string{"error": "Not found"})
}

// ValidationError writes a 422 with a field→message map.
func ValidationError(w http.ResponseWriter, errs map[string]string) {
	JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
		"success": false,
		"error":   "Validation failed",
		"fields":  errs,
	})
}
