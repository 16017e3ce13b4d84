package httpx

import (
	"encoding/json"
	"net/http"
)

// Envelope is the success/failure body the mutating endpoints return.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ValidationBody is the 422 shape: a top-level message plus per-field
// message lists.
type ValidationBody struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteEnvelope(w http.ResponseWriter, status int, success bool, msg string) {
	WriteJSON(w, status, Envelope{Success: success, Message: msg})
}

func WriteValidationErrors(w http.ResponseWriter, errs map[string][]string) {
	WriteJSON(w, http.StatusUnprocessableEntity, ValidationBody{
		Message: "The given data was invalid.",
		Errors:  errs,
	})
}
