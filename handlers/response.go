package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"task-manager/backend/logging"
	"task-manager/backend/services"
)

const maxBodyBytes = 1 << 20

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Logger.Errorf("Event ID: RESPONSE_ENCODE_ERROR, Description: Failed to encode response: %v", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}

// writeError maps service errors onto status codes. Anything unrecognised is
// logged and reported as a 500 without leaking details.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		switch svcErr.Code {
		case services.ErrorCodeValidation, services.ErrorCodeConflict:
			writeMessage(w, http.StatusBadRequest, svcErr.Message)
			return
		case services.ErrorCodeNotFound:
			writeMessage(w, http.StatusNotFound, svcErr.Message)
			return
		case services.ErrorCodeUnauthorized:
			writeMessage(w, http.StatusUnauthorized, svcErr.Message)
			return
		}
	}

	logging.Logger.Errorf("Event ID: INTERNAL_ERROR, Description: %s %s failed: %+v", r.Method, r.URL.Path, err)
	writeMessage(w, http.StatusInternalServerError, "Internal server error")
}

// decodeAndValidate reads a JSON body into dst and runs its validate tags.
// On failure the error response is already written and false is returned.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, r, services.NewError(services.ErrorCodeValidation, "Invalid request body"))
		return false
	}
	if err := validateStruct(dst); err != nil {
		writeError(w, r, err)
		return false
	}
	return true
}

func pathID(r *http.Request, entity string) (primitive.ObjectID, error) {
	return services.ParseID(mux.Vars(r)["id"], entity)
}

func pageResponse[T any](key string, page *services.Page[T]) map[string]any {
	return map[string]any{
		key:     page.Items,
		"page":  page.Page,
		"pages": page.Pages,
	}
}
