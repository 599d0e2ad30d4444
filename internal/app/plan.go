package app

import "context"

// Plan validates the requested port forwards and returns the publish
// pairs the runtime will receive, including the serving-port entry.
func (s Service) Plan(ctx context.Context, req PlanRequest) (PlanResult, error) {
	mapper, err := s.buildMapper(ctx, req.Forwarded, req.ForwardedCSV, req.ContainerPort, req.ReservedPath)
	if err != nil {
		return PlanResult{}, err
	}
	return PlanResult{
		Mappings:      mapper.AllMappings(),
		PublishPairs:  mapper.PublishPairs(),
		PublishString: mapper.PublishArgumentString(),
	}, nil
}
