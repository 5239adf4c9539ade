package apicheck

import "errors"

// Sentinel errors for check outcomes.
var (
	// ErrVerificationFailed reports that one or more checks did not pass.
	ErrVerificationFailed = errors.New("verification failed")
)
