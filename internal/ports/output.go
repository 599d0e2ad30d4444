package ports

import "vm-portmap/internal/types"

// FragmentWriterPort renders the deployment-template contribution to a
// destination. An empty path means standard output.
type FragmentWriterPort interface {
	WriteFragment(fragment types.DeploymentFragment, path string) error
}
