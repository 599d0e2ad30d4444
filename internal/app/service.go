package app

import (
	"context"

	"vm-portmap/internal/adapters"
	"vm-portmap/internal/core"
	"vm-portmap/internal/ports"
	"vm-portmap/internal/types"
)

type Service struct {
	PolicyLoader   ports.PolicyLoaderPort
	FragmentWriter ports.FragmentWriterPort
}

func NewService() Service {
	return Service{
		PolicyLoader:   adapters.NewPolicyFileAdapter(),
		FragmentWriter: adapters.NewFragmentFileAdapter(),
	}
}

// buildMapper constructs a PortMapper for the request and applies the
// forwarded-port batches. The slice form and the CSV form are separate
// batches so an error message names the right source.
func (s Service) buildMapper(ctx context.Context, forwarded []string, csv string, containerPort int, reservedPath string) (*core.PortMapper, error) {
	policy, err := s.PolicyLoader.LoadPolicy(reservedPath)
	if err != nil {
		return nil, err
	}
	mapper, err := core.NewPortMapper(containerPort, policy)
	if err != nil {
		return nil, err
	}
	if len(forwarded) > 0 {
		if _, err := mapper.AddBatch(ctx, forwarded, types.BatchKindForwarded); err != nil {
			return nil, err
		}
	}
	if csv != "" {
		if _, err := mapper.AddBatchCSV(ctx, csv, types.BatchKindForwarded); err != nil {
			return nil, err
		}
	}
	return mapper, nil
}
