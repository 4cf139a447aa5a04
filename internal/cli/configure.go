package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"lmu-times-deploy/internal/app"
	"lmu-times-deploy/internal/types"
)

type configureOptions struct {
	Spec  string
	Force bool
}

func newConfigureCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Generate component environment files",
	}
	cmd.AddCommand(newConfigureComponentCommand(types.ComponentKindBackend, "Prompt for backend settings and write its .env file"))
	cmd.AddCommand(newConfigureComponentCommand(types.ComponentKindBot, "Prompt for bot settings and write its .env file"))
	return cmd
}

func newConfigureComponentCommand(component types.ComponentKind, short string) *cobra.Command {
	opts := configureOptions{}
	cmd := &cobra.Command{
		Use:   string(component),
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg("configure takes no positional arguments")
			}
			return runConfigure(cmd.Context(), cmd, component, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Spec, "spec", "", "Deploy spec path")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite an existing env file without asking")
	_ = viper.BindPFlag("spec", cmd.Flags().Lookup("spec"))
	return cmd
}

func runConfigure(ctx context.Context, cmd *cobra.Command, component types.ComponentKind, opts configureOptions) error {
	service := newAppService()
	result, err := service.Configure(ctx, app.ConfigureRequest{
		SpecPath:  resolveString(cmd, opts.Spec, "spec", "spec"),
		Component: component,
		Force:     opts.Force,
	})
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d keys)\n", result.EnvPath, result.Keys)
	return nil
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	if fromConfig := viper.GetString(key); fromConfig != "" {
		return fromConfig
	}
	return value
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
