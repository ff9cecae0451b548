package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"patterns/internal/composite"
)

var errRemoveRoot = errors.New("the root cannot be removed")

func newCompositeCmd() *cobra.Command {
	var (
		deep    bool
		from    string
		remove  []string
		archive bool
	)

	cmd := &cobra.Command{
		Use:   "composite",
		Short: "Print the paths of a directory tree",
		Example: `  # Direct children of the built-in tree
  patterns composite

  # Every path of a real directory
  patterns composite --from ./internal --deep`,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := demoTree()
			if from != "" {
				var err error
				root, err = composite.BuildFromDisk(from)
				if err != nil {
					return err
				}
			}

			for _, p := range remove {
				if err := removePath(root, p); err != nil {
					return err
				}
			}

			listing := root.ChildrenTree
			if deep {
				listing = root.DescendantTree
			}
			tree, err := listing()
			if err != nil {
				return err
			}
			if tree != "" {
				fmt.Fprintln(cmd.OutOrStdout(), tree)
			}

			if archive {
				zipBytes, err := composite.ToZipBytes(root)
				if err != nil {
					return fmt.Errorf("failed to compress tree: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "compressed to %d bytes\n", len(zipBytes))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&deep, "deep", false, "List every descendant instead of direct children")
	cmd.Flags().StringVar(&from, "from", "", "Mirror this directory instead of the built-in tree")
	cmd.Flags().StringSliceVar(&remove, "remove", nil, "Remove the node at this path before listing (repeatable)")
	cmd.Flags().BoolVar(&archive, "zip", false, "Also report the size of the tree as a zip archive")

	return cmd
}

func removePath(root *composite.Dir, path string) error {
	n, err := root.Find(path)
	if err != nil {
		return err
	}
	parent := n.Parent()
	if parent == nil {
		return errRemoveRoot
	}
	parent.RemoveChild(n)
	return nil
}

// demoTree builds:
// /
// |-- dir0/  file0
// |-- dir1/  dir3/ file4, dir4/ file5 file6 file7, file1
// |-- dir2/  dir5/, file2, file3
func demoTree() *composite.Dir {
	root := composite.NewRoot()
	dir0 := composite.NewDir("dir0", root)
	dir1 := composite.NewDir("dir1", root)
	dir2 := composite.NewDir("dir2", root)
	dir3 := composite.NewDir("dir3", dir1)
	dir4 := composite.NewDir("dir4", dir1)
	composite.NewDir("dir5", dir2)

	composite.NewFile("file0", dir0)
	composite.NewFile("file1", dir1)
	composite.NewFile("file2", dir2)
	composite.NewFile("file3", dir2)
	composite.NewFile("file4", dir3)
	composite.NewFile("file5", dir4)
	composite.NewFile("file6", dir4)
	composite.NewFile("file7", dir4)

	return root
}
