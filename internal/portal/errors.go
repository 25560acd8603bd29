package portal

import (
	"errors"
	"fmt"
)

// AuthKind tells why a login was refused.
type AuthKind int

const (
	InvalidCredentials AuthKind = iota
	SessionCookieMissing
)

func (k AuthKind) String() string {
	switch k {
	case InvalidCredentials:
		return "invalid credentials"
	case SessionCookieMissing:
		return "session cookie missing"
	default:
		return "unknown"
	}
}

// AuthError is returned when the portal does not grant a session.
type AuthError struct {
	Kind    AuthKind
	Message string
}

func (e *AuthError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("portal auth: %s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("portal auth: %s", e.Kind)
}

// NetworkError wraps a transport failure. It never carries credentials.
type NetworkError struct {
	Op  string
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("portal %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsAuthKind reports whether err is an AuthError of the given kind.
func IsAuthKind(err error, kind AuthKind) bool {
	var authErr *AuthError
	return errors.As(err, &authErr) && authErr.Kind == kind
}
