package types

// PublishPortsMetadataKey is the metadata key the deployment template
// reads the publish-argument string from.
const PublishPortsMetadataKey = "gae_publish_ports"

type MetadataItem struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

type VMMetadata struct {
	Items []MetadataItem `yaml:"items"`
}

type VMParams struct {
	Metadata VMMetadata `yaml:"metadata"`
}

type Template struct {
	VMParams VMParams `yaml:"vmParams"`
}

// DeploymentFragment is the contribution this module makes to the
// deployment template: a single metadata item reachable at
// template.vmParams.metadata.items carrying the publish-argument string.
type DeploymentFragment struct {
	Template Template `yaml:"template"`
}
