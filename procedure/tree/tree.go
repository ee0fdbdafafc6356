package tree

import (
	"errors"
	"io/fs"

	"github.com/go-git/go-billy/v5"
	"go.scnd.dev/open/forge/package/span"
	"go.scnd.dev/open/forge/package/structure"
)

type Entry struct {
	Path   string `json:"path"`
	Kind   Kind   `json:"kind"`
	Status Status `json:"status"`
}

// Report compares a derived structure with what exists on disk.
type Report struct {
	ModuleName string   `json:"module_name"`
	Entries    []*Entry `json:"entries"`
}

func (r *Report) Complete() bool {
	for _, entry := range r.Entries {
		if entry.Status != StatusPresent {
			return false
		}
	}
	return true
}

func (r *Report) Drift() []*Entry {
	entries := make([]*Entry, 0)
	for _, entry := range r.Entries {
		if entry.Status != StatusPresent {
			entries = append(entries, entry)
		}
	}
	return entries
}

// Inspect checks the module root, every folder and every file of structure on filesystem.
// Nothing is created or modified.
func Inspect(filesystem billy.Filesystem, structure *structure.Structure) (*Report, error) {
	report := &Report{
		ModuleName: structure.ModuleName,
		Entries:    make([]*Entry, 0, 1+len(structure.Folders)+len(structure.Files)),
	}

	inspect := func(path string, kind Kind) error {
		entry := &Entry{
			Path:   path,
			Kind:   kind,
			Status: StatusPresent,
		}
		report.Entries = append(report.Entries, entry)

		// * check existence
		info, err := filesystem.Lstat(filesystem.Join(structure.ModuleName, path))
		if errors.Is(err, fs.ErrNotExist) {
			entry.Status = StatusMissing
			return nil
		}
		if err != nil {
			return span.NewError(nil, "unable to inspect path", err)
		}

		// * check kind
		if info.IsDir() != (kind == KindFolder) {
			entry.Status = StatusConflict
		}
		return nil
	}

	if err := inspect("", KindFolder); err != nil {
		return nil, err
	}
	for _, folder := range structure.Folders {
		if err := inspect(folder, KindFolder); err != nil {
			return nil, err
		}
	}
	for _, file := range structure.Files {
		if err := inspect(file, KindFile); err != nil {
			return nil, err
		}
	}

	return report, nil
}
