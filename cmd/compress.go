package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pxtools/pkg/batch"
	"pxtools/pkg/executor"
	"pxtools/pkg/imagecompress"
)

// imageExtensions are the formats the converter can rewrite in place.
var imageExtensions = batch.NewExtensionSet(".mhd", ".mha", ".gipl", ".tif", ".tiff", ".jpg")

type compressOptions struct {
	Batch         batchOptions
	ComponentType string `validate:"omitempty,printascii"`
	Converter     string `validate:"required"`
}

func newCompressImageCommand(a *app) *cobra.Command {
	opts := &compressOptions{}

	cmd := &cobra.Command{
		Use:   "compress-image [flags] pattern...",
		Short: "Recompress images in place with an external converter",
		Long: fmt.Sprintf(`Recompress every matched image in place by running

  <converter> -in PATH -out PATH [-opct TYPE] -z

once per file. Allowed extensions: %s.

The converter's exit status is not checked and its standard output is
discarded; its error output is shown as is.

Examples:
  pxtools compress-image '*.mhd'
  pxtools compress-image -t unsigned_char 'scans/*.tif' 'scans/*.tiff'`, imageExtensions),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validate.Struct(opts); err != nil {
				return fmt.Errorf("invalid options: %w", err)
			}

			compressor := imagecompress.New(
				executor.NewWrappedExecutor(opts.Converter),
				opts.ComponentType,
				opts.Batch.DryRun,
				cmd.OutOrStdout(),
				cmd.ErrOrStderr(),
				a.logger,
			)
			return a.runBatch(cmd, &opts.Batch, &batch.Processor{
				Extensions: imageExtensions,
				Action:     compressor,
			}, args)
		},
	}

	opts.Batch.bindFlags(cmd)
	cmd.Flags().StringVarP(&opts.ComponentType, "opct", "t", "", "Output (component) type passed to the converter")
	cmd.Flags().StringVar(&opts.Converter, "converter", imagecompress.DefaultConverter, "Converter executable")

	return cmd
}
