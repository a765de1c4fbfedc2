package main

import (
	"context"
	"fmt"
	"image/png"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/tsawler/gridmark"
	"github.com/tsawler/gridmark/render"
)

func main() {
	cmd := &cli.Command{
		Name:  "gridmark",
		Usage: "Extract table-grid border geometry from SVG documents",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Usage:    "Input SVG file path",
				Required: true,
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "edges",
				Usage:  "List detected border edges",
				Action: listEdges,
			},
			{
				Name:  "render",
				Usage: "Write a PNG preview of the detected geometry",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output PNG file path",
						Value:   "preview.png",
					},
					&cli.FloatFlag{
						Name:  "scale",
						Usage: "View scale factor (>= 1)",
						Value: 1,
					},
					&cli.FloatFlag{
						Name:  "brightness",
						Usage: "Backdrop brightness (0-1)",
						Value: 1,
					},
				},
				Action: renderPreview,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func listEdges(_ context.Context, cmd *cli.Command) error {
	doc, err := gridmark.Open(cmd.String("input")).Document()
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	fmt.Printf("view box: %g x %g\n", doc.ViewBox.Width, doc.ViewBox.Height)
	fmt.Printf("border marks: %d, edges: %d\n", len(doc.Rects), len(doc.Edges))
	for _, e := range doc.Edges {
		if e.Kind.Horizontal() {
			fmt.Printf("  %-6s x=%g y=%g width=%g\n", e.Kind, e.X, e.Y, e.Width)
		} else {
			fmt.Printf("  %-6s x=%g y=%g height=%g\n", e.Kind, e.X, e.Y, e.Height)
		}
	}
	return nil
}

func renderPreview(_ context.Context, cmd *cli.Command) error {
	doc, err := gridmark.Open(cmd.String("input")).Document()
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	img, err := render.Preview(doc, nil, render.Options{
		Scale:      cmd.Float("scale"),
		Brightness: cmd.Float("brightness"),
	})
	if err != nil {
		return err
	}

	out, err := os.Create(cmd.String("output"))
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer out.Close()

	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}
