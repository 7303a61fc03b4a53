// Package dispatch runs a single named hook against a single raw
// event payload. Every call is an independent transaction over a
// read-only registry snapshot; a broken hook must never leave the
// host without a response, so callers pair any error with Fallback().
package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tidwall/gjson"

	"github.com/hookforge/cli/cmd/hookforge/cli/event"
	"github.com/hookforge/cli/cmd/hookforge/cli/hook"
	"github.com/hookforge/cli/cmd/hookforge/cli/logging"
)

// ErrMissingKind marks a payload without a usable hook_event_name.
var ErrMissingKind = errors.New("missing hook_event_name field")

// ExecError wraps a failure inside hook logic: an error return, a
// panic, a timeout, or a capability mismatch. It is always
// recoverable from the host's point of view.
type ExecError struct {
	Hook string
	Kind event.Kind
	Err  error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("hook %s failed for %s: %v", e.Hook, e.Kind, e.Err)
}

func (e *ExecError) Unwrap() error { return e.Err }

// Fallback is the response emitted whenever dispatch fails for any
// reason, so the host keeps going instead of hanging on a broken
// hook.
func Fallback() []byte {
	return []byte(`{"continue": true, "suppressOutput": false}`)
}

// Run dispatches one raw event payload to the hook registered under
// name. The payload's own hook_event_name selects the contract; the
// input is decoded forward-compatibly (unknown fields ignored), the
// implementation is invoked under the descriptor's timeout with
// panics absorbed, and the output is encoded per the kind's wire
// rules. The encoded response is returned on success; on any failure
// the caller should emit Fallback() instead.
func Run(ctx context.Context, reg *hook.Registry, name string, raw []byte) ([]byte, error) {
	ctx = logging.WithHook(logging.WithComponent(ctx, "dispatch"), name)

	if !gjson.ValidBytes(raw) {
		return nil, errors.New("payload is not valid JSON")
	}
	tag := gjson.GetBytes(raw, "hook_event_name")
	if !tag.Exists() || tag.String() == "" {
		return nil, ErrMissingKind
	}

	contract, err := event.Lookup(tag.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, tag.String())
	}

	d, err := reg.Get(name)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	logging.Debug(ctx, "hook invoked",
		slog.String("kind", string(contract.Kind)),
		slog.String("unit", d.Unit),
	)

	out, err := invoke(ctx, contract, d, raw)

	logging.LogDuration(ctx, slog.LevelDebug, "hook completed", start,
		slog.String("kind", string(contract.Kind)),
		slog.Bool("success", err == nil),
	)
	if err != nil {
		return nil, &ExecError{Hook: name, Kind: contract.Kind, Err: err}
	}

	encoded, err := json.Marshal(out)
	if err != nil {
		return nil, &ExecError{Hook: name, Kind: contract.Kind, Err: err}
	}
	return encoded, nil
}

type invokeResult struct {
	out json.Marshaler
	err error
}

// invoke runs the hook body with the descriptor's timeout applied and
// panics converted to errors. The hook goroutine may outlive a
// timeout; the process is short-lived, so it is abandoned rather than
// interrupted.
func invoke(ctx context.Context, contract event.Contract, d *hook.Descriptor, raw []byte) (json.Marshaler, error) {
	runCtx, cancel := context.WithTimeout(ctx, d.Timeout)
	defer cancel()

	ch := make(chan invokeResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- invokeResult{err: fmt.Errorf("panic: %v", r)}
			}
		}()
		out, err := contract.Run(runCtx, d.Impl(), raw)
		ch <- invokeResult{out: out, err: err}
	}()

	select {
	case res := <-ch:
		return res.out, res.err
	case <-runCtx.Done():
		return nil, runCtx.Err()
	}
}
