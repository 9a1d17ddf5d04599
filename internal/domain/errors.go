package domain

import "errors"

// Error kinds returned by the coordinator services. Callers match them with
// errors.Is; the concrete cause is wrapped alongside the kind.
var (
	// ErrAuth covers bad credentials and identity-provider failures.
	ErrAuth = errors.New("authentication failed")
	// ErrProfileWrite means the identity was created but the account
	// document write failed, leaving an orphaned identity. The orphan is
	// repaired on the next successful login.
	ErrProfileWrite = errors.New("account document write failed")
	// ErrInsufficientBalance is a local precondition failure; no remote
	// call was made.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrLocalPersist means the embedded order cache write failed; the
	// remote balance was not touched.
	ErrLocalPersist = errors.New("local order persist failed")
	// ErrBalanceSync means the remote balance deduction failed after the
	// local order record was committed. The record stays pending until
	// RetryPending confirms or voids it.
	ErrBalanceSync = errors.New("balance sync failed")
	// ErrRead covers remote menu/account read failures.
	ErrRead = errors.New("remote read failed")
	// ErrUpload covers image host upload failures.
	ErrUpload = errors.New("image upload failed")
)
