package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lmu-times-deploy/internal/app"
)

type embedOptions struct {
	Icon   string
	Source string
	Token  string
}

func newEmbedIconCommand() *cobra.Command {
	opts := embedOptions{}
	cmd := &cobra.Command{
		Use:   "embed-icon",
		Short: "Substitute an icon placeholder with the base64-encoded icon bytes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEmbedIcon(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.Icon, "icon", "", "Icon file to embed")
	cmd.Flags().StringVar(&opts.Source, "source", "", "Source file containing the placeholder")
	cmd.Flags().StringVar(&opts.Token, "token", "<ICON_BASE64>", "Placeholder token")
	_ = cmd.MarkFlagRequired("icon")
	_ = cmd.MarkFlagRequired("source")
	return cmd
}

func runEmbedIcon(ctx context.Context, opts embedOptions) error {
	service := newAppService()
	result, err := service.Embed(ctx, app.EmbedRequest{
		IconPath:   opts.Icon,
		SourcePath: opts.Source,
		Token:      opts.Token,
	})
	if err != nil {
		return err
	}
	fmt.Printf("embedded icon into %s (backup: %s)\n", opts.Source, result.BackupPath)
	return nil
}
