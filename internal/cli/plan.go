package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"vm-portmap/internal/app"
)

type planOptions struct {
	Forward       []string
	ForwardCSV    string
	ContainerPort int
	Reserved      string
	Publish       bool
}

func newPlanCommand() *cobra.Command {
	opts := planOptions{}
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the port pairs the container runtime will publish",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlan(cmd.Context(), cmd, opts)
		},
	}
	addForwardFlags(cmd, &opts.Forward, &opts.ForwardCSV, &opts.ContainerPort, &opts.Reserved)
	cmd.Flags().BoolVar(&opts.Publish, "publish-string", false, "Print the runtime publish-argument string instead of pairs")
	return cmd
}

func runPlan(ctx context.Context, cmd *cobra.Command, opts planOptions) error {
	service := newAppService()
	result, err := service.Plan(ctx, app.PlanRequest{
		Forwarded:     resolveStrings(cmd, opts.Forward, "forward", "forward"),
		ForwardedCSV:  resolveString(cmd, opts.ForwardCSV, "forwarded_ports", "forwarded-ports"),
		ContainerPort: resolveInt(cmd, opts.ContainerPort, "container_port", "container-port"),
		ReservedPath:  resolveString(cmd, opts.Reserved, "reserved_ports", "reserved-ports"),
	})
	if err != nil {
		return err
	}
	if opts.Publish {
		fmt.Println(result.PublishString)
		return nil
	}
	for _, pair := range result.PublishPairs {
		fmt.Printf("%d:%d\n", pair.Host, pair.Container)
	}
	return nil
}
