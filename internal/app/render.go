package app

import "context"

// Render validates the requested port forwards and writes the deployment
// fragment to the requested destination.
func (s Service) Render(ctx context.Context, req RenderRequest) (RenderResult, error) {
	mapper, err := s.buildMapper(ctx, req.Forwarded, req.ForwardedCSV, req.ContainerPort, req.ReservedPath)
	if err != nil {
		return RenderResult{}, err
	}
	fragment := mapper.DeploymentFragment()
	if err := s.FragmentWriter.WriteFragment(fragment, req.OutputPath); err != nil {
		return RenderResult{}, err
	}
	return RenderResult{Fragment: fragment, OutputPath: req.OutputPath}, nil
}
