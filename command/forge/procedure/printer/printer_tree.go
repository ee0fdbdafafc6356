package printer

import (
	"io"
	"strings"

	"github.com/ddddddO/gtree"
	"go.scnd.dev/open/forge/package/structure"
)

// Tree renders the structure as a directory tree rooted at the module name.
// Folders come first in their sorted order, then files.
func Tree(w io.Writer, structure *structure.Structure) error {
	root := gtree.NewRoot(structure.ModuleName)
	nodes := map[string]*gtree.Node{
		"": root,
	}

	add := func(path string) {
		parent := ""
		for _, segment := range strings.Split(path, "/") {
			current := segment
			if parent != "" {
				current = parent + "/" + segment
			}
			if _, ok := nodes[current]; !ok {
				nodes[current] = nodes[parent].Add(segment)
			}
			parent = current
		}
	}

	for _, folder := range structure.Folders {
		add(folder)
	}
	for _, file := range structure.Files {
		add(file)
	}

	return gtree.OutputFromRoot(w, root)
}
