package cli

// SilentError marks an error whose message has already reached the user.
// Commands like execute report failures on stderr themselves (the stdout
// channel is reserved for hook responses), so main.go skips printing when
// it unwraps one of these.
type SilentError struct {
	Err error
}

func (e *SilentError) Error() string {
	return e.Err.Error()
}

func (e *SilentError) Unwrap() error {
	return e.Err
}

// NewSilentError wraps err so main.go will not print it a second time.
func NewSilentError(err error) *SilentError {
	return &SilentError{Err: err}
}

// ExitCodeError carries a process exit code other than the default 1.
// main.go unwraps it and exits with ExitCode.
type ExitCodeError struct {
	Err      error
	ExitCode int
}

func (e *ExitCodeError) Error() string {
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// NewExitCodeError wraps err with the exit code the process should use.
func NewExitCodeError(err error, code int) *ExitCodeError {
	return &ExitCodeError{Err: err, ExitCode: code}
}
