package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

var ErrOutsideRoot = errors.New("output path is outside the generation root")

// Confine resolves output against root and rejects anything that escapes it,
// including through symbolic links that already exist on disk. An empty root
// allows any output.
func Confine(root string, output string) (string, error) {
	if root == "" {
		return output, nil
	}

	base, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}

	target := output
	if !filepath.IsAbs(target) {
		target = filepath.Join(base, target)
	}
	target = filepath.Clean(target)

	// * lexical check
	if !within(base, target) {
		return "", ErrOutsideRoot
	}

	// * check again with links resolved
	realBase, err := realPath(base)
	if err != nil {
		return "", err
	}
	realTarget, err := realPath(target)
	if err != nil {
		return "", err
	}
	if !within(realBase, realTarget) {
		return "", ErrOutsideRoot
	}

	return target, nil
}

func within(base string, target string) bool {
	relative, err := filepath.Rel(base, target)
	if err != nil {
		return false
	}
	return relative != ".." && !strings.HasPrefix(relative, ".."+string(filepath.Separator))
}

// realPath evaluates links on the deepest existing ancestor of path and
// appends the components that do not exist yet.
func realPath(path string) (string, error) {
	existing := path
	missing := make([]string, 0)
	for {
		if _, err := os.Stat(existing); err == nil {
			break
		}
		parent := filepath.Dir(existing)
		if parent == existing {
			return path, nil
		}
		missing = append([]string{filepath.Base(existing)}, missing...)
		existing = parent
	}

	resolved, err := filepath.EvalSymlinks(existing)
	if err != nil {
		return "", err
	}

	return filepath.Join(append([]string{resolved}, missing...)...), nil
}
