package ports

// Verifier defines the interface for verifying file existence.
//
//go:generate go run go.uber.org/mock/mockgen -source=verifier.go -destination=mocks/mock_verifier.go -package=mocks
type Verifier interface {
	// VerifyOutputs returns the outputs that do not exist under root.
	VerifyOutputs(root string, outputs []string) (missing []string, err error)
}
