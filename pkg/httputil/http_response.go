package httputil

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
)

var ErrEmptyBody = errors.New("empty request body")

type ErrorResponse struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	writeError(w, ErrorResponse{Code: statusCode, Message: message}, details)
}

// WriteKindErrorResponse is WriteErrorResponse with the failure kind exposed to the client.
func WriteKindErrorResponse(w http.ResponseWriter, statusCode int, kind, message string) {
	writeError(w, ErrorResponse{Code: statusCode, Kind: kind, Message: message}, nil)
}

func writeError(w http.ResponseWriter, resp ErrorResponse, details error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Code)
	if details != nil {
		resp.Details = details.Error()
	}
	sonic.ConfigFastest.NewEncoder(w).Encode(resp)
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body != nil {
		sonic.ConfigDefault.NewEncoder(w).Encode(body)
	}
}

// DecodeJSON reads one JSON document from body into v and closes the body.
func DecodeJSON(body io.ReadCloser, v any) error {
	if body == nil || body == http.NoBody {
		return ErrEmptyBody
	}
	defer body.Close()
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyBody
	}
	return sonic.ConfigDefault.Unmarshal(data, v)
}
