package utils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/forumapi-dev/forumapi/internal/domain"
	"github.com/forumapi-dev/forumapi/internal/errors"
	"github.com/forumapi-dev/forumapi/internal/logger"
)

const serverFailure = "terjadi kegagalan pada server kami"

var validate = validator.New(validator.WithRequiredStructEnabled())

type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// WriteJSON encodes v with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(envelope{Status: "error", Message: serverFailure})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(buf.Bytes())
}

// WriteSuccess writes {"status":"success","data":data}. A nil data omits the key.
func WriteSuccess(w http.ResponseWriter, statusCode int, data any) {
	WriteJSON(w, statusCode, envelope{Status: "success", Data: data})
}

// WriteFail writes a client failure with an explicit message.
func WriteFail(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, envelope{Status: "fail", Message: message})
}

// WriteErrorAndStatusCode maps err to its status code. Client errors carry
// their (translated) message; anything else is logged and masked.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	statusCode := errors.StatusCode(err)
	if !errors.IsClientError(err) {
		logger.Log.Error("internal server error", "status", statusCode, "error", err)
		WriteJSON(w, statusCode, envelope{Status: "error", Message: serverFailure})
		return
	}
	WriteFail(w, statusCode, errors.Message(err))
}

// DecodeValidate decodes a JSON body into a struct and runs its validate tags.
func DecodeValidate(r io.ReadCloser, body any) error {
	if err := Decode(r, body); err != nil {
		return err
	}
	if err := validate.Struct(body); err != nil {
		logger.Log.Debug("request validation failed", "error", err)
		return &errors.ErrorWithStatusCode{Message: "Required fields missing", StatusCode: http.StatusBadRequest}
	}
	return nil
}

func Decode(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug("request body is not valid json", "error", err)
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	return nil
}

// DecodePayload decodes a JSON object body into a domain payload. An empty
// body yields an empty payload so that field presence is reported by the
// entity schema rather than the transport.
func DecodePayload(r io.ReadCloser) (domain.Payload, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, &errors.ErrorWithStatusCode{Message: "failed to read request body", StatusCode: http.StatusBadRequest}
	}
	payload := domain.Payload{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return payload, nil
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		logger.Log.Debug("request body is not a json object", "error", err)
		return nil, &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	return payload, nil
}
