package terminal

import (
	"fmt"
	"strings"
)

// Backend names accepted by Open.
const (
	BackendANSI  = "ansi"
	BackendTcell = "tcell"
)

// Open creates the named backend on the controlling terminal.
// An empty name selects the default ANSI backend.
func Open(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", BackendANSI:
		return openANSI()
	case BackendTcell:
		return NewTcellBackend()
	default:
		return nil, fmt.Errorf("%w: %q (want %q or %q)", ErrUnknownBackend, name, BackendANSI, BackendTcell)
	}
}
