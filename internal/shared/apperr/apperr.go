package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	Invalid     Kind = "invalid"
	NotFound    Kind = "not_found"
	Conflict    Kind = "conflict"
	BadGateway  Kind = "bad_gateway"
	Unreachable Kind = "unreachable"
	Internal    Kind = "internal"
)

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return string(e.Kind)
}

func (e *AppError) Unwrap() error { return e.Err }

// Constructors (PublicMsg must be short and safe for the screen)
func InvalidErr(publicMsg string, fields map[string]string) *AppError {
	return &AppError{Kind: Invalid, PublicMsg: publicMsg, Fields: fields}
}
func NotFoundErr(publicMsg string) *AppError {
	return &AppError{Kind: NotFound, PublicMsg: publicMsg}
}
func ConflictErr(publicMsg string) *AppError {
	return &AppError{Kind: Conflict, PublicMsg: publicMsg}
}

// BadGatewayErr: upstream answered with an unexpected status.
func BadGatewayErr(status int, err error) *AppError {
	return &AppError{
		Kind:       BadGateway,
		PublicMsg:  fmt.Sprintf("HTTP error: %d", status),
		StatusCode: status,
		Err:        err,
	}
}

// UnreachableErr: no response from upstream at all.
func UnreachableErr(err error) *AppError {
	return &AppError{Kind: Unreachable, PublicMsg: "could not reach server", Err: err}
}

// Wrap: internal error without a dedicated public message (default 500)
func Wrap(err error) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Kind: Internal, PublicMsg: "An unexpected error occurred.", Err: err}
}

func As(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

func HTTPStatus(err error) int {
	if ae, ok := As(err); ok {
		switch ae.Kind {
		case Invalid:
			return http.StatusUnprocessableEntity
		case NotFound:
			return http.StatusNotFound
		case Conflict:
			return http.StatusConflict
		case BadGateway:
			return http.StatusBadGateway
		case Unreachable:
			return http.StatusServiceUnavailable
		default:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}

func PublicMessage(err error) string {
	if ae, ok := As(err); ok && ae.PublicMsg != "" {
		return ae.PublicMsg
	}
	return "An unexpected error occurred."
}
