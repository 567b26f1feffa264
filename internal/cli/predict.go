package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"petra/internal/predict"
)

func newPredictCmd(opts *rootOptions) *cobra.Command {
	var (
		inferenceURL string
		timeout      time.Duration
	)
	client := func(cmd *cobra.Command) (*predict.Client, error) {
		cfg, err := opts.resolve()
		if err != nil {
			return nil, err
		}
		if cmd.Flags().Changed("inference-url") {
			cfg.InferenceURL = inferenceURL
		}
		if err := validate(cfg); err != nil {
			return nil, err
		}
		d := cfg.PredictTimeout()
		if cmd.Flags().Changed("timeout") {
			d = timeout
		}
		log := opts.logger(cfg)
		return predict.New(predict.Options{
			Endpoint: cfg.InferenceURL,
			Path:     cfg.PredictPath,
			Timeout:  d,
			Logger:   &log,
		}), nil
	}

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Send an image to the inference service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("predict requires a subcommand: file|url")
		},
	}
	cmd.PersistentFlags().StringVar(&inferenceURL, "inference-url", "", "Inference service base URL (defaults FASTAPI_URL)")
	cmd.PersistentFlags().DurationVar(&timeout, "timeout", predict.DefaultTimeout, "Per-request deadline")

	fileCmd := &cobra.Command{
		Use:     "file <path>",
		Short:   "Upload a local image",
		Example: "  petra predict file ./assets/oil_1.jpg",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			c, err := client(cmd)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), c.PredictByFile(cmd.Context(), data, filepath.Base(args[0])))
		},
	}
	urlCmd := &cobra.Command{
		Use:     "url <image-url>",
		Short:   "Ask the inference service to fetch an image URL",
		Example: "  petra predict url https://example.com/scene.jpg",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client(cmd)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), c.PredictByURL(cmd.Context(), args[0]))
		},
	}
	cmd.AddCommand(fileCmd, urlCmd)
	return cmd
}

// printResult writes the result body as indented JSON; failures also yield
// a non-zero exit.
func printResult(w io.Writer, res predict.Result) error {
	b, err := json.MarshalIndent(res.Body(), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(b))
	if !res.OK {
		return exitError{code: 1, err: fmt.Errorf("prediction failed (%s): %s", res.Kind, res.Message)}
	}
	return nil
}
