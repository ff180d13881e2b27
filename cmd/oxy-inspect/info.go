package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/Carmen-Shannon/oxy-inspect/common"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newInfoCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info [model.gltf|model.glb]",
		Short: "List the objects of a model and whether each has a record",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model := ""
			if len(args) == 1 {
				model = args[0]
			}
			cfg, err := resolveConfig(opts, model)
			if err != nil {
				return err
			}
			logger := zap.NewNop()
			scn, err := loadScene(cfg, logger)
			if err != nil {
				return err
			}
			records, err := loadRecords(cfg, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			b := scn.Bounds()
			fmt.Fprintf(out, "scene %s: %d objects, %d selectable\n", scn.Name(), scn.Count(), len(scn.Selectable()))
			fmt.Fprintf(out, "bounds: min %s max %s\n\n", formatVec(b.Min), formatVec(b.Max))

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tKIND\tTRIANGLES\tMATERIAL\tRECORD")
			for _, obj := range scn.Objects() {
				tris := 0
				if m := obj.Model(); m != nil {
					tris = m.TriangleCount()
				}
				mat := "-"
				if obj.Material() != nil {
					mat = obj.Material().Name()
				}
				rec := "no"
				if records.Has(obj.Name()) {
					rec = "yes"
				}
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", obj.Name(), obj.Kind(), tris, mat, rec)
			}
			return tw.Flush()
		},
	}
}

func formatVec(v common.Vec3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X(), v.Y(), v.Z())
}
