package policies

// Ports used by our own daemons or critical system services on the VM.
// 8080 is types.DefaultServingPort, occupied by the HTTP server.
var defaultReservedHostPorts = map[int]struct{}{
	22:    {}, // SSH
	5000:  {}, // container registry
	8080:  {}, // HTTP server
	10000: {}, // unlock endpoint
	10001: {}, // control-plane stubby proxy
}

// Traffic may be forwarded to the HTTP server inside the container, so the
// serving port is absent here.
var defaultReservedContainerPorts = map[int]struct{}{
	22:    {},
	5000:  {},
	10001: {},
}

// privilegedPortCeiling is the first container port users may forward to
// without an explicit higher-numbered forward.
const privilegedPortCeiling = 1024

type ReservedPortPolicy struct {
	hostPorts      map[int]struct{}
	containerPorts map[int]struct{}
}

// NewReservedPortPolicy returns the policy backed by the built-in
// reserved-port tables.
func NewReservedPortPolicy() ReservedPortPolicy {
	return NewReservedPortPolicyWith(nil, nil)
}

// NewReservedPortPolicyWith extends the built-in tables with additional
// reserved ports. The defaults can never be removed, only added to.
func NewReservedPortPolicyWith(extraHost []int, extraContainer []int) ReservedPortPolicy {
	policy := ReservedPortPolicy{
		hostPorts:      map[int]struct{}{},
		containerPorts: map[int]struct{}{},
	}
	for port := range defaultReservedHostPorts {
		policy.hostPorts[port] = struct{}{}
	}
	for port := range defaultReservedContainerPorts {
		policy.containerPorts[port] = struct{}{}
	}
	for _, port := range extraHost {
		policy.hostPorts[port] = struct{}{}
	}
	for _, port := range extraContainer {
		policy.containerPorts[port] = struct{}{}
	}
	return policy
}

func (p ReservedPortPolicy) HostReserved(port int) bool {
	_, ok := p.hostPorts[port]
	return ok
}

func (p ReservedPortPolicy) ContainerReserved(port int) bool {
	_, ok := p.containerPorts[port]
	return ok
}

func (p ReservedPortPolicy) Privileged(port int) bool {
	return port < privilegedPortCeiling
}
