package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/vitemap/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Verifier = (*Verifier)(nil)

// Verifier provides functionality to verify the existence of files.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// VerifyOutputs checks every output against the given root directory and
// returns the ones that do not exist, in input order.
func (v *Verifier) VerifyOutputs(root string, outputs []string) ([]string, error) {
	var missing []string
	for _, output := range outputs {
		path := filepath.Join(root, output)
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				missing = append(missing, output)
				continue
			}
			return nil, zerr.With(zerr.Wrap(err, "failed to stat output"), "path", path)
		}
	}
	return missing, nil
}
