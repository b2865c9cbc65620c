package prompt

import (
	"io"
	"log/slog"
)

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithDriver overrides the prompt driver used by the session.
func WithDriver(driver PromptDriver) SessionOption {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithLogger injects the logger used for session diagnostics.
func WithLogger(log *slog.Logger) SessionOption {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// WithMaxAttempts bounds how often a rejected field is asked again.
func WithMaxAttempts(limit int) SessionOption {
	return func(s *Session) {
		if limit > 0 {
			s.maxAttempts = limit
		}
	}
}

// WithOutput redirects informational output. The default survey driver prints
// rejection messages there.
func WithOutput(out io.Writer) SessionOption {
	return func(s *Session) {
		if out != nil {
			s.out = out
		}
	}
}
