package services

import "errors"

var (
	// ErrInvalidID is the error returned by services when
	// the id provided in the call to the service is invalid
	ErrInvalidID = errors.New("id was invalid or not provided")
	// ErrNotFound is the error returned by services when
	// the requested object could not be found
	ErrNotFound = errors.New("requested object could not be found")
	// ErrUnauthorized is the error returned by services when
	// the employees API rejects the provided token or credentials
	ErrUnauthorized = errors.New("request was not authorized by the employees API")
	// ErrRejected is the error returned by services when
	// the employees API rejects a request for any other reason (e.g. username taken)
	ErrRejected = errors.New("request was rejected by the employees API")
	// ErrUnavailable is the error returned by services when
	// the employees API could not be reached or failed to handle the request
	ErrUnavailable = errors.New("employees API is unavailable")
)
