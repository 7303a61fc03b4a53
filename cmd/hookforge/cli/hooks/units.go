// Package hooks lists the extension units bundled with the binary.
// Each unit registers its hooks through an explicit function; the
// slice order here is the discovery order, which in turn is the
// listing and config generation order.
package hooks

import (
	"github.com/hookforge/cli/cmd/hookforge/cli/hook"
	"github.com/hookforge/cli/cmd/hookforge/cli/hooks/audit"
	"github.com/hookforge/cli/cmd/hookforge/cli/hooks/bashguard"
	"github.com/hookforge/cli/cmd/hookforge/cli/hooks/secrets"
	"github.com/hookforge/cli/cmd/hookforge/cli/hooks/selftest"
	"github.com/hookforge/cli/cmd/hookforge/cli/hooks/workspace"
)

// Units returns the bundled extension units in discovery order.
func Units() []hook.Unit {
	return []hook.Unit{
		bashguard.Unit(),
		audit.Unit(),
		workspace.Unit(),
		secrets.Unit(),
		selftest.Unit(),
	}
}
