// Command oxy-inspect opens a glTF model of a site in a window and shows the record of each
// element you pick.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// options holds the command-line flags shared by the subcommands.
type options struct {
	configPath string
	records    string
	logFile    string
	logLevel   string
	policy     string
	profile    bool
	software   bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "oxy-inspect [model.gltf|model.glb]",
		Short: "Interactive 3D site inspector",
		Long: `oxy-inspect - Interactive 3D site inspector

Fly through a glTF or GLB model and inspect the record attached to each element.

Controls:
  W/S/A/D       - Move forward, back, left, right
  Q/E           - Rise and sink
  Shift / Alt   - Fast and precision speed
  Shift+Space   - Boost
  Left drag     - Look around
  Right drag    - Pan
  Scroll        - Move forward and back
  Double click  - Select the element under the pointer
  X             - Close the info panel
  Esc           - Quit`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			model := ""
			if len(args) == 1 {
				model = args[0]
			}
			return runViewer(opts, model)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "oxy-inspect.toml", "Path to the TOML configuration file")
	flags.StringVar(&opts.records, "records", "", "Path to the YAML records file (overrides scene.records)")
	flags.StringVar(&opts.logFile, "log-file", "", "Write a rotated JSON log to this file (overrides log.file)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error (overrides log.level)")
	flags.StringVar(&opts.policy, "policy", "", "Pick policy: double or single (overrides picking.policy)")
	cmd.Flags().BoolVar(&opts.profile, "profile", false, "Log frame rate and memory statistics every second")
	cmd.Flags().BoolVar(&opts.software, "software", false, "Force the software GPU adapter")

	cmd.AddCommand(newInfoCommand(opts), newConfigCommand(opts))
	return cmd
}
