// boxdemo lays out and renders TOML scene files with the software backend.
package main

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	box "github.com/grindlemire/go-box"
	"github.com/grindlemire/go-box/internal/raster"
	"github.com/grindlemire/go-box/internal/scene"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

func main() {
	root := &cobra.Command{
		Use:           "boxdemo",
		Short:         "Lay out and render box-model scenes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(inspectCmd(), renderCmd())

	if err := root.Execute(); err != nil {
		logger.Fatal("command failed", "err", err)
	}
}

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <scene.toml>",
		Short: "Print the computed geometry of a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trees, _, err := computeScene(args[0])
			if err != nil {
				return err
			}
			for _, tree := range trees {
				printTree(cmd.OutOrStdout(), tree, 0)
			}
			return nil
		},
	}
}

func renderCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "render <scene.toml>",
		Short: "Render a scene to a PNG image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trees, win, err := computeScene(args[0])
			if err != nil {
				return err
			}

			canvas := raster.New(win.Width, win.Height, win.CellWidth, win.CellHeight)
			rc := &box.RenderContext{Sink: canvas, Sprites: canvas}
			for _, tree := range trees {
				if err := box.Render(rc, tree); err != nil {
					return fmt.Errorf("render: %w", err)
				}
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := png.Encode(f, canvas.Flush()); err != nil {
				return fmt.Errorf("encode %s: %w", out, err)
			}
			logger.Info("rendered scene", "scene", args[0], "out", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "out.png", "output image path")
	return cmd
}

// computeScene lays out each top-level scene element independently so a
// failing tree cannot take down the rest of the scene.
func computeScene(path string) ([]*box.ComputedElement, scene.Window, error) {
	s, err := scene.Load(path)
	if err != nil {
		return nil, scene.Window{}, err
	}
	return s.ComputeTrees(s.Window.Context(), logger), s.Window, nil
}

func printTree(w io.Writer, e *box.ComputedElement, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(w, "%sbounds=%v content=%v z=%d\n", indent, e.Bounds, e.ContentRect, e.ZIndex)
	if children, ok := e.Content.(*box.ComputedChildren); ok {
		for _, child := range children.Children {
			printTree(w, child, depth+1)
		}
	}
}
