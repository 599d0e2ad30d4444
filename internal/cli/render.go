package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"vm-portmap/internal/app"
)

type renderOptions struct {
	Forward       []string
	ForwardCSV    string
	ContainerPort int
	Reserved      string
	Output        string
}

func newRenderCommand() *cobra.Command {
	opts := renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the deployment-template metadata fragment",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd.Context(), cmd, opts)
		},
	}
	addForwardFlags(cmd, &opts.Forward, &opts.ForwardCSV, &opts.ContainerPort, &opts.Reserved)
	cmd.Flags().StringVar(&opts.Output, "output", "", "Fragment output path (stdout when empty)")
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	return cmd
}

func runRender(ctx context.Context, cmd *cobra.Command, opts renderOptions) error {
	service := newAppService()
	result, err := service.Render(ctx, app.RenderRequest{
		Forwarded:     resolveStrings(cmd, opts.Forward, "forward", "forward"),
		ForwardedCSV:  resolveString(cmd, opts.ForwardCSV, "forwarded_ports", "forwarded-ports"),
		ContainerPort: resolveInt(cmd, opts.ContainerPort, "container_port", "container-port"),
		ReservedPath:  resolveString(cmd, opts.Reserved, "reserved_ports", "reserved-ports"),
		OutputPath:    resolveString(cmd, opts.Output, "output", "output"),
	})
	if err != nil {
		return err
	}
	if result.OutputPath != "" {
		fmt.Printf("fragment written: %s\n", result.OutputPath)
	}
	return nil
}
