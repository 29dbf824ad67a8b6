package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/pixfx"
	"github.com/gogpu/pixfx/internal/imageio"
	"github.com/gogpu/pixfx/track"
)

func (a *app) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List filters in cycle order",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			idx := color.New(color.FgBlue)
			name := color.New(color.Bold, color.FgHiWhite)
			desc := color.New(color.FgCyan)

			for _, f := range pixfx.Filters() {
				idx.Fprintf(a.stdout, "%2d ", int(f))
				name.Fprintf(a.stdout, "%-11s", f.Name())
				desc.Fprintf(a.stdout, " %s", f.Description())
				fmt.Fprintln(a.stdout)
			}
			return nil
		},
	}
}

func (a *app) nextCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "next <filter>",
		Short:     "Print the filter that follows the given one",
		Args:      cobra.ExactArgs(1),
		ValidArgs: filterNames(),
		RunE: func(_ *cobra.Command, args []string) error {
			f, err := pixfx.ParseFilter(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, f.Next().Name())
			return nil
		},
	}
}

func (a *app) applyCommand() *cobra.Command {
	var f pixfx.Filter

	cmd := &cobra.Command{
		Use:   "apply <input> <output>",
		Short: "Apply one filter to an image",
		Long: "Apply one filter to an image. The output format follows the\n" +
			"output file extension.",
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			if _, err := imageio.FormatFromPath(args[1]); err != nil {
				return err
			}
			src, err := imageio.Load(args[0])
			if err != nil {
				return err
			}
			out, err := a.engine.Apply(src, f)
			if err != nil {
				return err
			}
			return a.save(args[1], out, f)
		},
	}
	cmd.Flags().VarP(newFilterValue(&f, pixfx.Grayscale), "filter", "f",
		"Filter to apply ("+strings.Join(filterNames(), ", ")+")")
	return cmd
}

func (a *app) cycleCommand() *cobra.Command {
	var steps int
	var start pixfx.Filter

	cmd := &cobra.Command{
		Use:   "cycle <input> <outdir>",
		Short: "Step through the filter cycle, writing one image per step",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			if steps < 1 {
				return fmt.Errorf("steps must be positive, got %d", steps)
			}
			src, err := imageio.Load(args[0])
			if err != nil {
				return err
			}
			if err := os.MkdirAll(args[1], 0o755); err != nil {
				return err
			}

			tr, err := track.New(a.engine, src)
			if err != nil {
				return err
			}
			if start != pixfx.Original {
				if _, err := tr.Select(start); err != nil {
					return err
				}
			}

			for range steps {
				frame, err := tr.Step()
				if err != nil {
					return err
				}
				suffix := fmt.Sprintf("%02d-%s", frame.Seq, strings.ToLower(frame.Filter.Name()))
				path := outputName(args[1], args[0], suffix, a.outputFormat())
				if err := a.save(path, frame.Image, frame.Filter); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&steps, "steps", "n", pixfx.NumFilters, "Number of steps")
	cmd.Flags().Var(newFilterValue(&start, pixfx.Original), "start",
		"Filter to start from; the first step renders the one after it")
	return cmd
}

func (a *app) allCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "all <input> <outdir>",
		Short: "Render every filter of the catalog concurrently",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := imageio.Load(args[0])
			if err != nil {
				return err
			}
			if err := os.MkdirAll(args[1], 0o755); err != nil {
				return err
			}

			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(max(a.cfg.Engine.Workers, 1))
			for _, f := range pixfx.Filters() {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					out, err := a.engine.Apply(src, f)
					if err != nil {
						return err
					}
					path := outputName(args[1], args[0], strings.ToLower(f.Name()), a.outputFormat())
					return a.save(path, out, f)
				})
			}
			return g.Wait()
		},
	}
}
