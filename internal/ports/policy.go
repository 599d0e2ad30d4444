package ports

// ReservedPolicyPort answers which ports user configuration may never
// claim on the VM or inside the container.
type ReservedPolicyPort interface {
	HostReserved(port int) bool
	ContainerReserved(port int) bool
	Privileged(port int) bool
}
