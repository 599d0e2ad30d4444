package core

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"vm-portmap/internal/policies"
	"vm-portmap/internal/ports"
	"vm-portmap/internal/shared"
	"vm-portmap/internal/types"
)

// PortMapper accumulates validated host-to-container port mappings for one
// provisioning run and renders them for the container runtime and the
// deployment template. Not safe for concurrent use; callers own
// serialization.
type PortMapper struct {
	policy        ports.ReservedPolicyPort
	containerPort int
	mappings      map[int]int
}

// NewPortMapper constructs a mapper publishing the container's serving
// port on containerPort. Zero selects the default serving port.
func NewPortMapper(containerPort int, policy ports.ReservedPolicyPort) (*PortMapper, error) {
	if containerPort == 0 {
		containerPort = types.DefaultServingPort
	}
	if containerPort < minPort || containerPort > maxPort {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid container port %d: must be in [%d, %d]", containerPort, minPort, maxPort))
	}
	if policy == nil {
		policy = policies.NewReservedPortPolicy()
	}
	return &PortMapper{
		policy:        policy,
		containerPort: containerPort,
		mappings:      map[int]int{},
	}, nil
}

// CreatePortMapper builds a mapper with user-requested forwarded ports
// already applied as a single batch.
func CreatePortMapper(ctx context.Context, forwarded []string, containerPort int) (*PortMapper, error) {
	mapper, err := NewPortMapper(containerPort, nil)
	if err != nil {
		return nil, err
	}
	log.Ctx(ctx).Debug().Strs("ports", forwarded).Msg("setting forwarded ports")
	if len(forwarded) == 0 {
		return mapper, nil
	}
	if _, err := mapper.AddBatch(ctx, forwarded, types.BatchKindForwarded); err != nil {
		return nil, err
	}
	return mapper, nil
}

// AddBatchCSV splits a comma-separated forwarding specification and adds
// it as one batch.
func (m *PortMapper) AddBatchCSV(ctx context.Context, csv string, kind string) (map[int]int, error) {
	return m.AddBatch(ctx, shared.SplitCSV(csv), kind)
}

// AddBatch validates a batch of port-forwarding specs and commits them.
// The batch is all-or-nothing: every spec is validated against the
// reserved-port policy, the committed mappings, and the other specs in
// the batch before any state changes. The returned map holds only the
// pairs from this batch.
func (m *PortMapper) AddBatch(ctx context.Context, specs []string, kind string) (map[int]int, error) {
	assert.NotEmpty(ctx, kind, "batch kind must be set")
	pending := map[int]int{}
	for _, raw := range specs {
		pair, err := ParsePortSpec(raw)
		if err != nil {
			return nil, illegalSpecError(kind, raw, err)
		}
		if m.policy.Privileged(pair.Container) {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("failed to load %s port configuration: cannot listen on port %d as it is privileged, use a forwarding port", kind, pair.Container))
		}
		if m.policy.ContainerReserved(pair.Container) {
			return nil, illegalReservedError(kind, pair.Container)
		}
		if m.policy.HostReserved(pair.Host) {
			return nil, illegalReservedError(kind, pair.Host)
		}
		if existing, ok := m.assigned(pending, pair.Host); ok && existing != pair.Container {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf("configuration conflict, port %d configured to forward differently (%d and %d)", pair.Host, existing, pair.Container))
		}
		pending[pair.Host] = pair.Container
	}
	for host, container := range pending {
		m.mappings[host] = container
	}
	log.Ctx(ctx).Debug().Str("kind", kind).Int("ports", len(pending)).Msg("port batch committed")
	return pending, nil
}

// assigned reports the container port already claimed for host, looking at
// both the committed mappings and the batch under validation.
func (m *PortMapper) assigned(pending map[int]int, host int) (int, bool) {
	if container, ok := pending[host]; ok {
		return container, true
	}
	container, ok := m.mappings[host]
	return container, ok
}

// AllMappings returns a copy of the committed host-to-container mappings.
func (m *PortMapper) AllMappings() map[int]int {
	mappings := make(map[int]int, len(m.mappings))
	for host, container := range m.mappings {
		mappings[host] = container
	}
	return mappings
}

// PublishPairs returns every pair the runtime must publish, in ascending
// host-port order. The serving-port entry is always present and takes
// precedence over a user mapping for the same host port.
func (m *PortMapper) PublishPairs() []types.PortPair {
	merged := m.AllMappings()
	merged[types.ServingHostPort] = m.containerPort
	hosts := make([]int, 0, len(merged))
	for host := range merged {
		hosts = append(hosts, host)
	}
	sort.Ints(hosts)
	pairs := make([]types.PortPair, 0, len(hosts))
	for _, host := range hosts {
		pairs = append(pairs, types.PortPair{Host: host, Container: merged[host]})
	}
	return pairs
}

// PublishArgumentString renders the publish pairs as runtime arguments,
// one "--publish=host:container" token per pair, each followed by a space.
func (m *PortMapper) PublishArgumentString() string {
	var builder strings.Builder
	for _, pair := range m.PublishPairs() {
		fmt.Fprintf(&builder, "--publish=%d:%d ", pair.Host, pair.Container)
	}
	return builder.String()
}

// DeploymentFragment wraps the publish-argument string into the metadata
// contribution for the deployment template.
func (m *PortMapper) DeploymentFragment() types.DeploymentFragment {
	return types.DeploymentFragment{
		Template: types.Template{
			VMParams: types.VMParams{
				Metadata: types.VMMetadata{
					Items: []types.MetadataItem{
						{Key: types.PublishPortsMetadataKey, Value: m.PublishArgumentString()},
					},
				},
			},
		},
	}
}

func illegalSpecError(kind string, raw string, cause error) error {
	message := cause.Error()
	var builder *errbuilder.ErrBuilder
	if errors.As(cause, &builder) && strings.TrimSpace(builder.Msg) != "" {
		message = builder.Msg
	}
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("failed to load %s port configuration: %q: %s", kind, raw, message)).
		WithCause(cause)
}

func illegalReservedError(kind string, port int) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("failed to load %s port configuration: cannot use port %d as it is reserved on the VM", kind, port))
}
