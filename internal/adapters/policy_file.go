package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"vm-portmap/internal/policies"
	"vm-portmap/internal/ports"
)

// reservedPortsFile is the on-disk shape of a reserved-port override
// file. Listed ports are added to the built-in tables; the defaults can
// never be removed.
type reservedPortsFile struct {
	ReservedHostPorts      []int `yaml:"reserved_host_ports"`
	ReservedContainerPorts []int `yaml:"reserved_container_ports"`
}

type PolicyFileAdapter struct{}

func NewPolicyFileAdapter() PolicyFileAdapter {
	return PolicyFileAdapter{}
}

// LoadPolicy reads additional reserved ports from path and merges them
// with the built-in tables. An empty path returns the default policy.
func (a PolicyFileAdapter) LoadPolicy(path string) (ports.ReservedPolicyPort, error) {
	if path == "" {
		return policies.NewReservedPortPolicy(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("reserved-ports file not found").
			WithCause(err)
	}
	var file reservedPortsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse reserved-ports file").
			WithCause(err)
	}
	return policies.NewReservedPortPolicyWith(file.ReservedHostPorts, file.ReservedContainerPorts), nil
}
