package extract

import "fmt"

// ParseError reports a timing line whose token is not a valid
// floating-point number. It aborts extraction: a malformed numeric field
// means the suite's output is corrupt and nothing past it can be trusted.
type ParseError struct {
	Line  string
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse elapsed time %q in line %q: %v", e.Token, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
