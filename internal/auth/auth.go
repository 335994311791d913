// Package auth provides pluggable credential verification. The
// default is a static username/password pair; real authentication can
// be substituted without touching the pipeline.
package auth

import "crypto/subtle"

// Verifier checks a username/password pair.
type Verifier interface {
	Verify(username, password string) bool
}

// StaticVerifier accepts exactly one credential pair.
type StaticVerifier struct {
	username string
	password string
}

func NewStaticVerifier(username, password string) *StaticVerifier {
	return &StaticVerifier{username: username, password: password}
}

func (v *StaticVerifier) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(v.password)) == 1
	return userOK && passOK
}
