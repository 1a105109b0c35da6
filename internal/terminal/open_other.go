//go:build !unix

package terminal

import "fmt"

func openANSI() (Backend, error) {
	return nil, fmt.Errorf("%w: %q is only available on unix", ErrUnknownBackend, BackendANSI)
}
