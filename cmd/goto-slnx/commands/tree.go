package commands

import (
	"path/filepath"
	"strings"

	"github.com/ddddddO/gtree"
	"github.com/spf13/cobra"

	"github.com/komimoe/GotoSlnx/cmd/goto-slnx/output"
	"github.com/komimoe/GotoSlnx/solution"
)

// NewTreeCommand creates the tree command, which previews the folder
// hierarchy a conversion would produce.
func NewTreeCommand(console *output.Console) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <SOLUTION|DIRECTORY>",
		Short: "Print the solution's folder and project hierarchy",
		Long: `Parse a .sln file and print its solution folders, solution items,
and projects as a tree, the way convert will arrange them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath, err := solution.ResolveInput(args[0])
			if err != nil {
				return err
			}
			sol, err := solution.NewParser().Parse(inputPath)
			if err != nil {
				return err
			}
			return printTree(console, inputPath, sol)
		},
	}

	return cmd
}

func printTree(console *output.Console, inputPath string, sol *solution.Solution) error {
	root := gtree.NewRoot(filepath.Base(inputPath))
	resolver := solution.NewFolderResolver(sol)

	// Folder nodes are created on demand, one gtree node per path
	// segment, shared by everything resolving under the same path.
	nodes := map[string]*gtree.Node{"/": root}
	nodeFor := func(path string) *gtree.Node {
		if node, ok := nodes[path]; ok {
			return node
		}
		node := root
		walked := "/"
		for _, segment := range strings.Split(strings.Trim(path, "/"), "/") {
			if segment == "" {
				continue
			}
			walked += segment + "/"
			if existing, ok := nodes[walked]; ok {
				node = existing
				continue
			}
			node = node.Add(segment + "/")
			nodes[walked] = node
		}
		return node
	}

	for _, entry := range sol.Projects {
		if entry.IsSolutionFolder {
			node := nodeFor(resolver.Resolve(entry.GUID))
			for _, item := range entry.SolutionItems {
				node.Add(item)
			}
			continue
		}
		parentPath := "/"
		if parent, ok := sol.NestedProjects[entry.GUID]; ok {
			parentPath = resolver.Resolve(parent)
		}
		nodeFor(parentPath).Add(entry.Path)
	}

	return gtree.OutputProgrammably(console.Out(), root)
}
