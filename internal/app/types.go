package app

import "vm-portmap/internal/types"

type CheckRequest struct {
	Forwarded     []string
	ForwardedCSV  string
	ContainerPort int
	ReservedPath  string
}

type CheckResult struct {
	Mappings map[int]int
}

type PlanRequest struct {
	Forwarded     []string
	ForwardedCSV  string
	ContainerPort int
	ReservedPath  string
}

type PlanResult struct {
	Mappings      map[int]int
	PublishPairs  []types.PortPair
	PublishString string
}

type RenderRequest struct {
	Forwarded     []string
	ForwardedCSV  string
	ContainerPort int
	ReservedPath  string
	OutputPath    string
}

type RenderResult struct {
	Fragment   types.DeploymentFragment
	OutputPath string
}
