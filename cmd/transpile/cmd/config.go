package cmd

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/session"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or generate TargetOptions documents",
}

var configDefaultCmd = &cobra.Command{
	Use:   "default",
	Short: "Print the default TargetOptions document as YAML",
	RunE: func(_ *cobra.Command, _ []string) error {
		out, err := yaml.Marshal(session.DefaultOptions())
		if err != nil {
			return fmt.Errorf("config: marshal defaults: %w", err)
		}
		_, err = os.Stdout.Write(out)
		return err
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [options.yaml]",
	Short: "Validate an options YAML document",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		opts, err := loadOptions(args[0])
		if err != nil {
			return err
		}
		if !opts.Dialect.Valid() {
			return fmt.Errorf("config: unrecognized dialect %q", opts.Dialect)
		}
		fmt.Printf("ok: dialect=%s indent=%d\n", opts.Dialect, opts.Indent)
		return nil
	},
}

// loadOptions reads and decodes an options YAML document. Unknown keys
// are ignored per spec §6.4 ("unknown keys are ignored, forward
// compatibility"), which is goccy/go-yaml's default decode behavior.
func loadOptions(path string) (session.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return session.Options{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	opts := session.DefaultOptions()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return session.Options{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return opts, nil
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configDefaultCmd)
	configCmd.AddCommand(configValidateCmd)
}
