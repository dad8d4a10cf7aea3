package main

import (
	"github.com/spf13/cobra"

	"github.com/vango-dev/rangeui/internal/demo"
	"github.com/vango-dev/rangeui/pkg/render"
	"github.com/vango-dev/rangeui/pkg/surface/memdom"
	"github.com/vango-dev/rangeui/pkg/vdom"
)

func inspectCmd(flags *globalFlags) *cobra.Command {
	var declared bool

	cmd := &cobra.Command{
		Use:   "inspect [view]",
		Short: "Print a view's virtual tree as YAML",
		Long: `Print the virtual tree of a demo view as YAML.

By default the view is mounted first so composites show the leaf
tree they render to. --declared prints the tree as built, with
composites shown by type.

Examples:
  rangeui inspect counter
  rangeui inspect app --declared`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(flags); err != nil {
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

			root := view.Build()
			if !declared {
				doc := memdom.New()
				if err := render.New(doc).Render(root, doc.Body()); err != nil {
					return err
				}
			}

			data, err := vdom.Dump(root).YAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&declared, "declared", false, "Print the tree as built, without mounting")

	return cmd
}
