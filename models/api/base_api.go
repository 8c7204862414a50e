package apimodels

import (
	"github.com/pkg/errors"
)

// ErrorKind classifies failures for callers: absent entity, rejected
// input, transient server fault, transport fault.
type ErrorKind string

const (
	ErrKindNotFound   ErrorKind = "not_found"
	ErrKindValidation ErrorKind = "validation"
	ErrKindServer     ErrorKind = "server"
	ErrKindNetwork    ErrorKind = "network"
)

type APIError struct {
	Kind    ErrorKind
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *APIError {
	return &APIError{Kind: ErrKindNotFound, Message: message}
}

func NewValidationError(message string) *APIError {
	return &APIError{Kind: ErrKindValidation, Message: message}
}

func NewServerError(message string) *APIError {
	return &APIError{Kind: ErrKindServer, Message: message}
}

func NewNetworkError(message string) *APIError {
	return &APIError{Kind: ErrKindNetwork, Message: message}
}

func KindOf(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ErrKindServer
}

func IsNotFound(err error) bool {
	return KindOf(err) == ErrKindNotFound
}

func IsValidation(err error) bool {
	return KindOf(err) == ErrKindValidation
}

// ErrorResponse is the wire shape of a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

type ListMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

type ListResponse struct {
	Data interface{} `json:"data"`
	Meta ListMeta    `json:"meta"`
}

func NewListResponse(data interface{}, page, limit int, total int64) ListResponse {
	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}
	return ListResponse{
		Data: data,
		Meta: ListMeta{Page: page, Limit: limit, Total: total, TotalPages: totalPages},
	}
}

type Pagination struct {
	Page  int `json:"page" query:"page"`
	Limit int `json:"limit" query:"limit"`
}

// GetPage normalizes paging input; defaultLimit differs per resource
// (jobs list 10, candidates list 50).
func (r Pagination) GetPage(defaultLimit int) (page, limit int) {
	page = 1
	limit = defaultLimit
	if r.Page > 0 {
		page = r.Page
	}
	if r.Limit > 0 {
		limit = r.Limit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
