// Command systemui-sim runs scripted system chrome scenarios against a
// virtual device: a YAML file describes a handset and a sequence of
// configure calls, keyboard and rotation events, and theme flips, and the
// sim prints the resulting chrome and optionally writes PNG snapshots.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "systemui-sim:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "systemui-sim",
		Short:         "Run system chrome scenarios against a virtual device",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var (
		snapshotDir string
		scale       float64
	)
	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Execute a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := loadScenario(args[0])
			if err != nil {
				return err
			}
			if snapshotDir != "" {
				if err := os.MkdirAll(snapshotDir, 0o755); err != nil {
					return err
				}
			}
			out := cmd.OutOrStdout()
			if sc.Name != "" {
				fmt.Fprintf(out, "scenario: %s\n", sc.Name)
			}
			r := newRunner(sc, out, snapshotDir, scale)
			defer r.close()
			return r.run()
		},
	}
	cmd.Flags().StringVar(&snapshotDir, "snapshot-dir", "", "directory snapshot paths are resolved against")
	cmd.Flags().Float64Var(&scale, "scale", 1, "snapshot scale factor")
	return cmd
}
