// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package api

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/Shashivarun2464480/Project-fe/internal/backend"
	"github.com/Shashivarun2464480/Project-fe/internal/logging"
	"github.com/Shashivarun2464480/Project-fe/internal/sync"
	"github.com/Shashivarun2464480/Project-fe/internal/validation"
)

// APIResponse is the envelope of every JSON response.
type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
	Meta    *APIMeta  `json:"meta,omitempty"`
}

// APIError describes a failed request.
type APIError struct {
	// Code is machine-readable, Message is fit for display.
	Code    string `json:"code"`
	Message string `json:"message"`

	// Details holds per-field messages for validation failures.
	Details any `json:"details,omitempty"`
}

// APIMeta is attached to every response.
type APIMeta struct {
	RequestID  string    `json:"request_id,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	DurationMs int64     `json:"duration_ms"`
}

// Error codes
const (
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeValidationFailed   = "VALIDATION_FAILED"
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeBackendUnavailable = "BACKEND_UNAVAILABLE"
	ErrCodeBackendError       = "BACKEND_ERROR"
)

// maxBodyBytes bounds request bodies; every form is small.
const maxBodyBytes = 64 << 10

// ResponseWriter writes enveloped responses for one request.
type ResponseWriter struct {
	w         http.ResponseWriter
	r         *http.Request
	startTime time.Time
}

// NewResponseWriter starts timing the request.
func NewResponseWriter(w http.ResponseWriter, r *http.Request) *ResponseWriter {
	return &ResponseWriter{w: w, r: r, startTime: time.Now()}
}

// Success writes 200 with data.
func (rw *ResponseWriter) Success(data any) {
	rw.writeJSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: rw.meta()})
}

// Created writes 201 with data.
func (rw *ResponseWriter) Created(data any) {
	rw.writeJSON(http.StatusCreated, APIResponse{Success: true, Data: data, Meta: rw.meta()})
}

// Error writes an error envelope.
func (rw *ResponseWriter) Error(statusCode int, code, message string) {
	rw.ErrorWithDetails(statusCode, code, message, nil)
}

// ErrorWithDetails writes an error envelope with details.
func (rw *ResponseWriter) ErrorWithDetails(statusCode int, code, message string, details any) {
	rw.writeJSON(statusCode, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: message, Details: details},
		Meta:    rw.meta(),
	})
}

// BadRequest writes 400.
func (rw *ResponseWriter) BadRequest(message string) {
	rw.Error(http.StatusBadRequest, ErrCodeBadRequest, message)
}

// Unauthorized writes 401.
func (rw *ResponseWriter) Unauthorized(message string) {
	rw.Error(http.StatusUnauthorized, ErrCodeUnauthorized, message)
}

// NotFound writes 404.
func (rw *ResponseWriter) NotFound(message string) {
	rw.Error(http.StatusNotFound, ErrCodeNotFound, message)
}

// Fail maps an error from the synchronization layer onto a status code.
// The message is always backend.UserMessage(err).
func (rw *ResponseWriter) Fail(err error) {
	message := backend.UserMessage(err)

	var ve *validation.RequestValidationError
	if errors.As(err, &ve) {
		rw.ErrorWithDetails(http.StatusBadRequest, ErrCodeValidationFailed, message, ve.FieldErrors())
		return
	}
	if isLocalRejection(err) {
		rw.BadRequest(message)
		return
	}

	be, ok := backend.AsError(err)
	if !ok {
		logging.Ctx(rw.r.Context()).Error().Err(err).Msg("Request failed")
		rw.Error(http.StatusInternalServerError, ErrCodeInternalError, message)
		return
	}

	switch be.Kind {
	case backend.KindTransport:
		rw.Error(http.StatusBadGateway, ErrCodeBackendUnavailable, message)
	case backend.KindAuth:
		if be.Status == http.StatusForbidden {
			rw.Error(http.StatusForbidden, ErrCodeForbidden, message)
			return
		}
		rw.Unauthorized(message)
	case backend.KindValidation:
		rw.BadRequest(message)
	case backend.KindNotFound:
		rw.NotFound(message)
	default:
		logging.Ctx(rw.r.Context()).Warn().Err(err).Int("backend_status", be.Status).Msg("Backend error")
		rw.Error(http.StatusBadGateway, ErrCodeBackendError, message)
	}
}

func isLocalRejection(err error) bool {
	for _, target := range []error{
		sync.ErrDownvoteCommentRequired,
		sync.ErrReviewCommentRequired,
		sync.ErrCommentRequired,
		sync.ErrFeedbackRequired,
		sync.ErrInvalidStatus,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (rw *ResponseWriter) meta() *APIMeta {
	return &APIMeta{
		RequestID:  logging.RequestIDFromContext(rw.r.Context()),
		Timestamp:  time.Now(),
		DurationMs: time.Since(rw.startTime).Milliseconds(),
	}
}

func (rw *ResponseWriter) writeJSON(statusCode int, data any) {
	rw.w.Header().Set("Content-Type", "application/json; charset=utf-8")
	rw.w.WriteHeader(statusCode)
	if err := json.NewEncoder(rw.w).Encode(data); err != nil {
		logging.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// decodeBody reads a JSON body into dst. An empty body leaves dst unchanged.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
