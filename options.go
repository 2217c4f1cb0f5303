package devcon

import "log"

// ScreenOption configures a Screen at construction time, following the
// same functional-options shape used throughout this module's consumers.
type ScreenOption func(*Screen)

// WithSize sets the initial visible dimensions. Non-positive values fall
// back to the 80x24 default.
func WithSize(cols, rows int) ScreenOption {
	return func(s *Screen) {
		if cols > 0 {
			s.initCols = cols
		}
		if rows > 0 {
			s.initRows = rows
		}
	}
}

// WithHistoryLimit caps how many scrolled-off lines are retained. Negative
// values leave the default (4096) untouched.
func WithHistoryLimit(max int) ScreenOption {
	return func(s *Screen) {
		if max >= 0 {
			s.historyLimit = max
		}
	}
}

// WithResponse supplies where DA/DECID/answerback responses are written.
func WithResponse(p ResponseProvider) ScreenOption {
	return func(s *Screen) {
		if p != nil {
			s.response = p
		}
	}
}

// WithBell supplies the bell sink.
func WithBell(p BellProvider) ScreenOption {
	return func(s *Screen) {
		if p != nil {
			s.bell = p
		}
	}
}

// WithAnswerback sets the string ENQ elicits, in place of the default empty one.
func WithAnswerback(answerback string) ScreenOption {
	return func(s *Screen) {
		s.answerback = answerback
	}
}

// WithLogger directs diagnostics ([DEBUG]/[WARN]) at l instead of discarding them.
func WithLogger(l *log.Logger) ScreenOption {
	return func(s *Screen) {
		if l != nil {
			s.log = l
		}
	}
}
