package security

import "fmt"

// AuthFailure describes why API request was rejected.
type AuthFailure string

const (
	// FailureNoCredentials is reported when request has no basic auth credentials.
	FailureNoCredentials AuthFailure = "no credentials"
	// FailureMalformed is reported when credentials could not be decoded.
	FailureMalformed AuthFailure = "malformed credentials"
	// FailureRejected is reported for unknown users and wrong passwords.
	FailureRejected AuthFailure = "credentials rejected"
)

// ErrUnauthorized is returned for API requests without valid credentials.
// Raw header is never kept, so the error is safe to log.
type ErrUnauthorized struct {
	Failure AuthFailure
	User    string
}

func (e *ErrUnauthorized) Error() string {
	if "" == e.User {
		return fmt.Sprintf("api access denied: %s", e.Failure)
	}

	return fmt.Sprintf("api access denied for %s: %s", e.User, e.Failure)
}
