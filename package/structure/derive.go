package structure

import (
	"sort"
	"strings"

	"go.scnd.dev/open/forge/package/spec"
)

// Derive maps a specification onto its module layout. It never fails: absent
// or malformed fields are treated as absent features.
func Derive(tree *spec.Tree) *Structure {
	return DeriveWith(tree, Rules)
}

func DeriveWith(tree *spec.Tree, rules []Rule) *Structure {
	moduleName := ModuleName(tree)

	// * union folders of every rule
	seen := make(map[string]struct{})
	folders := make([]string, 0, 8)
	for _, rule := range rules {
		for _, folder := range rule.Folders(tree) {
			if _, ok := seen[folder]; ok {
				continue
			}
			seen[folder] = struct{}{}
			folders = append(folders, folder)
		}
	}
	sort.Strings(folders)

	return &Structure{
		ModuleName: moduleName,
		Folders:    folders,
		Files: []string{
			SpecFile(moduleName),
			FileReadme,
			FileArchitecture,
		},
	}
}

// ModuleName returns the module scalar as a single path segment, or
// DefaultModuleName when it is missing, blank or not a scalar.
func ModuleName(tree *spec.Tree) string {
	name, ok := spec.Text(tree.Lookup("module"))
	if !ok {
		return DefaultModuleName
	}

	name = strings.TrimSpace(SanitizeModuleName(name))
	if name == "" || name == "." || name == ".." {
		return DefaultModuleName
	}

	return name
}

// SanitizeModuleName drops characters that cannot appear in a directory name.
func SanitizeModuleName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', 0:
			return -1
		}
		return r
	}, name)
}
