package structure

import (
	"strings"

	"go.scnd.dev/open/forge/package/spec"
)

// Rule maps one concern of a specification onto folder suffixes. Rules are
// evaluated independently and their folders unioned.
type Rule struct {
	Name    string
	Folders func(tree *spec.Tree) []string
}

const (
	FolderSource = "src"
	FolderTests  = "tests"
	FolderDocs   = "docs"
)

var Rules = []Rule{
	{
		Name:    "baseline",
		Folders: func(*spec.Tree) []string {
			return []string{FolderSource, FolderTests, FolderDocs}
		},
	},
	{
		Name:    "interfaces",
		Folders: when(func(tree *spec.Tree) bool { return spec.Present(tree.Lookup("api", "interfaces")) }, "src/Interfaces"),
	},
	{
		Name:    "events",
		Folders: when(func(tree *spec.Tree) bool { return spec.Present(tree.Lookup("events")) }, "src/Events"),
	},
	{
		Name:    "models",
		Folders: ModelFolders,
	},
	{
		Name:    "layers",
		Folders: LayerFolders,
	},
	{
		Name:    "integration",
		Folders: when(func(tree *spec.Tree) bool { return spec.Present(tree.Lookup("integration")) }, "src/Integration"),
	},
	{
		Name:    "monitoring",
		Folders: when(func(tree *spec.Tree) bool { return spec.Present(tree.Lookup("monitoring")) }, "src/Monitoring"),
	},
}

func when(predicate func(tree *spec.Tree) bool, folders ...string) func(tree *spec.Tree) []string {
	return func(tree *spec.Tree) []string {
		if !predicate(tree) {
			return nil
		}
		return folders
	}
}

func ModelFolders(tree *spec.Tree) []string {
	if !spec.Present(tree.Lookup("dataModels")) {
		return nil
	}

	folders := []string{"src/Models"}
	if spec.Present(tree.Lookup("dataModels", "dtos")) {
		folders = append(folders, "src/Models/Dtos")
	}
	if spec.Present(tree.Lookup("dataModels", "entities")) {
		folders = append(folders, "src/Models/Entities")
	}

	return folders
}

func LayerFolders(tree *spec.Tree) []string {
	var folders []string
	for _, layer := range spec.Items(tree.Lookup("architecture", "layers")) {
		name, ok := spec.Text(spec.Child(layer, "name"))
		if !ok {
			continue
		}

		name = NormalizeLayerName(name)
		if name == "" || !SafeRelative(name) {
			continue
		}

		folders = append(folders, FolderSource+"/"+name)
	}
	return folders
}

// NormalizeLayerName removes spaces. Other whitespace is kept as is.
func NormalizeLayerName(name string) string {
	return strings.ReplaceAll(name, " ", "")
}

// SafeRelative reports whether a slash separated path stays below its root:
// no empty, "." or ".." segments and no leading slash.
func SafeRelative(path string) bool {
	if path == "" {
		return false
	}
	for _, segment := range strings.Split(path, "/") {
		if segment == "" || segment == "." || segment == ".." {
			return false
		}
	}
	return true
}
