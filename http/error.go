package http

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/fwojciec/skim"
)

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	skim.ECONFLICT:   http.StatusConflict,
	skim.EINVALID:    http.StatusBadRequest,
	skim.ETOOSHORT:   http.StatusBadRequest,
	skim.EDEGENERATE: http.StatusBadRequest,
	skim.ENOTFOUND:   http.StatusNotFound,
	skim.EUPSTREAM:   http.StatusBadGateway,
	skim.EINTERNAL:   http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

// ErrorResponse is the JSON body of a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// Error writes err as a JSON error response. Internal errors are logged
// and reported to the client without detail.
func (s *Server) Error(w http.ResponseWriter, r *http.Request, err error) {
	code, message := skim.ErrorCode(err), skim.ErrorMessage(err)

	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		writeJSON(w, http.StatusRequestEntityTooLarge, &ErrorResponse{Error: "request body too large", Code: skim.EINVALID})
		return
	}

	if code == skim.EINTERNAL {
		s.Logger.Error("http error", "method", r.Method, "path", r.URL.Path, "err", err)
	}

	writeJSON(w, ErrorStatusCode(code), &ErrorResponse{Error: message, Code: code})
}

// decodeJSON reads a JSON request body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any, maxBytes int64) error {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		return skim.Errorf(skim.EINVALID, "Content-Type must be application/json")
	}

	if maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			return err
		}
		return skim.Errorf(skim.EINVALID, "invalid JSON payload: %v", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
