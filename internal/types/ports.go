package types

// DefaultServingPort is the container's primary application port and the
// VM host port it is published on when nothing else is configured.
const DefaultServingPort = 8080

// ServingHostPort is the VM-facing port the serving entry is always
// published under, independent of the configured container port.
const ServingHostPort = DefaultServingPort

// PortPair is a single host-to-container publish rule. Host is a port on
// the VM itself; Container is the port inside the container that traffic
// is forwarded to.
type PortPair struct {
	Host      int `yaml:"host"`
	Container int `yaml:"container"`
}

// BatchKindForwarded labels batches originating from user-supplied
// forwarded-ports configuration in error messages.
const BatchKindForwarded = "forwarded"
