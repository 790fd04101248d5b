package ports

// DevServerDetector reports whether a live dev server is serving the current deployment.
//
//go:generate go run go.uber.org/mock/mockgen -source=detector.go -destination=mocks/mock_detector.go -package=mocks
type DevServerDetector interface {
	// Detect returns true when a dev server is active. hotFile is the file a
	// running dev server writes; the origin is read from it when present.
	Detect(hotFile string) (active bool, origin string, err error)
}
