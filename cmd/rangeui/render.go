package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vango-dev/rangeui/internal/demo"
	"github.com/vango-dev/rangeui/pkg/render"
	"github.com/vango-dev/rangeui/pkg/surface/memdom"
)

func renderCmd(flags *globalFlags) *cobra.Command {
	var (
		clicks []string
		inputs []string
		pretty bool
		ids    bool
		stats  bool
	)

	cmd := &cobra.Command{
		Use:   "render [view]",
		Short: "Render a demo view to HTML",
		Long: `Render a demo view into an in-memory document and print its HTML.

--click and --input script events before printing. Each --click
clicks the first button whose text matches; each --input sends an
input event with the given value to the first <input>. Clicks run
before inputs, each in the order given.

Examples:
  rangeui render counter --click + --click +
  rangeui render todo --input milk --click add --pretty
  rangeui render toggle --click toggle --stats`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			name := demo.DefaultView
			if len(args) == 1 {
				name = args[0]
			}
			view, err := demo.Lookup(name)
			if err != nil {
				return err
			}

			doc := memdom.New()
			engine := render.New(doc, render.WithLogger(slog.Default().With("view", name)))
			if err := engine.Render(view.Build(), doc.Body()); err != nil {
				return err
			}
			mounted := doc.Stats()
			doc.ResetStats()

			for _, value := range inputs {
				input, ok := firstElement(doc.Body(), "input")
				if !ok {
					return fmt.Errorf("view %s has no <input>", name)
				}
				doc.Dispatch(input, "input", value)
			}
			for _, text := range clicks {
				if _, err := doc.Click("button", text); err != nil {
					return err
				}
			}

			opts := memdom.HTMLOptions{
				Pretty:  pretty || cfg.Render.Pretty,
				NodeIDs: ids,
			}
			out := cmd.OutOrStdout()
			for _, c := range doc.Body().Children() {
				c.WriteHTML(out, opts)
			}
			if !opts.Pretty {
				fmt.Fprintln(out)
			}

			if stats {
				st := doc.Stats()
				info(cmd.ErrOrStderr(), "mount: %d created, %d inserted", mounted.Created, mounted.Inserted)
				info(cmd.ErrOrStderr(), "events: %d created, %d inserted, %d removed", st.Created, st.Inserted, st.Removed)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&clicks, "click", nil, "Click the button with this text (repeatable)")
	cmd.Flags().StringArrayVar(&inputs, "input", nil, "Send an input event with this value (repeatable)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the output")
	cmd.Flags().BoolVar(&ids, "ids", false, "Emit data-node ids on interactive elements")
	cmd.Flags().BoolVar(&stats, "stats", false, "Print host mutation counters to stderr")

	return cmd
}

func firstElement(n *memdom.Node, tag string) (*memdom.Node, bool) {
	if n.Type() == memdom.ElementNode && n.Tag() == tag {
		return n, true
	}
	for _, c := range n.Children() {
		if found, ok := firstElement(c, tag); ok {
			return found, true
		}
	}
	return nil, false
}
