package ports

// PolicyLoaderPort resolves the reserved-port policy for a run, merging
// any operator-supplied overrides with the built-in tables.
type PolicyLoaderPort interface {
	LoadPolicy(path string) (ReservedPolicyPort, error)
}
