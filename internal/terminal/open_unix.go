//go:build unix

package terminal

func openANSI() (Backend, error) {
	return NewANSIBackend(), nil
}
