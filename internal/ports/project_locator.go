package ports

// ProjectLocator finds the nearest project root that carries client settings.
type ProjectLocator interface {
	FindRoot(startDir string) (string, error)
}
