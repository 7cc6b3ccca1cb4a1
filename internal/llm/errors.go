package llm

import "fmt"

// ErrRateLimited means the model provider rejected the call with HTTP 429.
// For client keys this usually means the user's own quota ran out.
type ErrRateLimited struct {
	Provider string
	Err      error
}

func (e *ErrRateLimited) Error() string {
	return fmt.Sprintf("%s: quota exhausted: %v", e.providerName(), e.Err)
}

func (e *ErrRateLimited) Unwrap() error { return e.Err }

func (e *ErrRateLimited) providerName() string {
	if e.Provider == "" {
		return "model"
	}
	return e.Provider
}

// ErrModelUnavailable means no reply could be obtained at all: no key, a
// network failure or a provider error.
type ErrModelUnavailable struct {
	Provider string
	Err      error
}

func (e *ErrModelUnavailable) Error() string {
	name := e.Provider
	if name == "" {
		name = "model"
	}
	if e.Err == nil {
		return name + " unavailable"
	}
	return fmt.Sprintf("%s unavailable: %v", name, e.Err)
}

func (e *ErrModelUnavailable) Unwrap() error { return e.Err }

// ErrMalformedReply means the model answered but the text could not be used
// as quiz content. Reply holds the text that was checked.
type ErrMalformedReply struct {
	Reply string
	Err   error
}

func (e *ErrMalformedReply) Error() string {
	return fmt.Sprintf("unusable model reply: %v", e.Err)
}

func (e *ErrMalformedReply) Unwrap() error { return e.Err }
