package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"vm-portmap/internal/types"
)

const (
	minPort = 1
	maxPort = 65535
)

// ParsePortSpec splits a raw "host:container" or bare "port" string into a
// PortPair. A bare port forwards to the same port inside the container.
// Whitespace around the value and around the separator is ignored.
func ParsePortSpec(raw string) (types.PortPair, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return types.PortPair{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("empty port spec")
	}
	if strings.Contains(trimmed, ":") {
		parts := strings.SplitN(trimmed, ":", 2)
		host, err := parsePort(parts[0])
		if err != nil {
			return types.PortPair{}, err
		}
		container, err := parsePort(parts[1])
		if err != nil {
			return types.PortPair{}, err
		}
		return types.PortPair{Host: host, Container: container}, nil
	}
	port, err := parsePort(trimmed)
	if err != nil {
		return types.PortPair{}, err
	}
	return types.PortPair{Host: port, Container: port}, nil
}

func parsePort(token string) (int, error) {
	token = strings.TrimSpace(token)
	port, err := strconv.Atoi(token)
	if err != nil {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid port %q", token)).
			WithCause(err)
	}
	if port < minPort || port > maxPort {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid port %d: must be in [%d, %d]", port, minPort, maxPort))
	}
	return port, nil
}
