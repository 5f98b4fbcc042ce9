package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tue-alga/compacting-squares/instance"
	"github.com/tue-alga/compacting-squares/render"
	"github.com/tue-alga/compacting-squares/topology"
)

func init() {
	renderCmd := &cobra.Command{
		Use:   "render <instance>",
		Short: "Export an instance's classification diagram to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	w, err := instance.Load(f)
	if err != nil {
		return err
	}

	if _, err := topology.MarkComponents(w); err != nil {
		return err
	}

	return render.Export(os.Stdout, w)
}
