package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"organise/shared/constant"
	"organise/shared/failure"
	"organise/shared/logger"

	"github.com/rs/zerolog/log"
)

type Error struct {
	Error  *string           `json:"error,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends jsonPayload as the response body, unwrapped.
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, jsonPayload)
}

// WithNoContent sends an empty response.
func WithNoContent(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNoContent)
}

// WithError sends err as {"error": ..., "fields": ...}. The status comes from failure.GetCode; errors
// that are not a Failure are reported with a generic message.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	body := Error{}

	var fail *failure.Failure
	if errors.As(err, &fail) {
		msg := fail.Message
		body.Error = &msg
		body.Fields = fail.Fields

		if fail.Kind == failure.KindStore {
			log.Error().Err(fail.Unwrap()).Str("resource", fail.Resource).Msg("store failure")
		}
	} else {
		msg := constant.ResponseErrorInternal
		body.Error = &msg

		log.Error().Err(err).Msg("unexpected failure")
	}

	response(writer, code, body)
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
