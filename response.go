package fleetbackend

import (
	"encoding/json"
	"net/http"
)

// Response renders itself to the response writer. The composer renders the
// handler's response only after the request transaction commits, so a
// rendered body always reflects durable state.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

type jsonResponse struct {
	status  int
	payload any
}

// JSON responds with the payload encoded as JSON and status 200.
func JSON(payload any) Response {
	return jsonResponse{status: http.StatusOK, payload: payload}
}

// JSONStatus responds with the payload encoded as JSON and the given status.
func JSONStatus(status int, payload any) Response {
	return jsonResponse{status: status, payload: payload}
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.payload)
}

type noContentResponse struct{}

// NoContent responds with status 204 and an empty body.
func NoContent() Response {
	return noContentResponse{}
}

func (noContentResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.WriteHeader(http.StatusNoContent)
	return nil
}
