package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"vm-portmap/internal/app"
)

type checkOptions struct {
	Forward       []string
	ForwardCSV    string
	ContainerPort int
	Reserved      string
}

func newCheckCommand() *cobra.Command {
	opts := checkOptions{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate port forwards without rendering anything",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd.Context(), cmd, opts)
		},
	}
	addForwardFlags(cmd, &opts.Forward, &opts.ForwardCSV, &opts.ContainerPort, &opts.Reserved)
	return cmd
}

func runCheck(ctx context.Context, cmd *cobra.Command, opts checkOptions) error {
	service := newAppService()
	result, err := service.Check(ctx, app.CheckRequest{
		Forwarded:     resolveStrings(cmd, opts.Forward, "forward", "forward"),
		ForwardedCSV:  resolveString(cmd, opts.ForwardCSV, "forwarded_ports", "forwarded-ports"),
		ContainerPort: resolveInt(cmd, opts.ContainerPort, "container_port", "container-port"),
		ReservedPath:  resolveString(cmd, opts.Reserved, "reserved_ports", "reserved-ports"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("configuration ok: %d port forwards\n", len(result.Mappings))
	return nil
}

func addForwardFlags(cmd *cobra.Command, forward *[]string, forwardCSV *string, containerPort *int, reserved *string) {
	cmd.Flags().StringSliceVar(forward, "forward", nil, "Port forward spec PORT or HOST:CONTAINER (repeatable)")
	cmd.Flags().StringVar(forwardCSV, "forwarded-ports", "", "Comma-separated port forward specs")
	cmd.Flags().IntVar(containerPort, "container-port", 0, "Container serving port (default 8080)")
	cmd.Flags().StringVar(reserved, "reserved-ports", "", "Reserved-port override file")
	_ = viper.BindPFlag("forward", cmd.Flags().Lookup("forward"))
	_ = viper.BindPFlag("forwarded_ports", cmd.Flags().Lookup("forwarded-ports"))
	_ = viper.BindPFlag("container_port", cmd.Flags().Lookup("container-port"))
	_ = viper.BindPFlag("reserved_ports", cmd.Flags().Lookup("reserved-ports"))
}
