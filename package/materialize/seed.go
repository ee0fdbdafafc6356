package materialize

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/lithammer/dedent"
)

const TimestampLayout = "2006-01-02 15:04:05"

var markdownSeed = strings.TrimPrefix(dedent.Dedent(`
	# %s

	Generated at: %s
`), "\n")

var specSeed = strings.TrimPrefix(dedent.Dedent(`
	# Source specification for %s
`), "\n")

// Seed returns the initial content of a newly created file, chosen by extension.
func Seed(module string, file string, now time.Time) []byte {
	switch strings.ToLower(path.Ext(file)) {
	case ".md":
		return []byte(fmt.Sprintf(markdownSeed, module, now.Format(TimestampLayout)))
	case ".yaml", ".yml":
		return []byte(fmt.Sprintf(specSeed, module))
	default:
		return []byte{}
	}
}
