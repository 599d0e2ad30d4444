package app

import "context"

// Check validates the requested port forwards without rendering anything.
func (s Service) Check(ctx context.Context, req CheckRequest) (CheckResult, error) {
	mapper, err := s.buildMapper(ctx, req.Forwarded, req.ForwardedCSV, req.ContainerPort, req.ReservedPath)
	if err != nil {
		return CheckResult{}, err
	}
	return CheckResult{Mappings: mapper.AllMappings()}, nil
}
