package structure

const (
	DefaultModuleName = "UnknownModule"

	FileReadme       = "README.md"
	FileArchitecture = "docs/Architecture.md"
)

// Structure is the derived layout of one module. Paths are relative to the
// module root and slash separated. Folders are unique and sorted, files keep
// their creation order. A Structure is never modified after Derive returns it.
type Structure struct {
	ModuleName string   `json:"module_name" yaml:"module_name"`
	Folders    []string `json:"folders" yaml:"folders"`
	Files      []string `json:"files" yaml:"files"`
}

// SpecFile is the name of the file mirroring the source specification.
func SpecFile(moduleName string) string {
	return moduleName + ".yaml"
}
