package span

import (
	"fmt"
	"runtime"
	"strings"
)

const packagePrefix = "go.scnd.dev/open/forge/package/span."

type Caller struct {
	Name *string `json:"name"`
	Line *int    `json:"line"`
}

func (r *Caller) String() string {
	return fmt.Sprintf("%s:%d", *r.Name, *r.Line)
}

func NewCaller() *Caller {
	// * find outer package caller
	skip := 1
	for {
		pc, _, _, ok := runtime.Caller(skip)
		if !ok {
			name := "unknown"
			line := 0
			return &Caller{
				Name: &name,
				Line: &line,
			}
		}
		name := runtime.FuncForPC(pc).Name()
		if !strings.HasPrefix(name, packagePrefix) {
			break
		}
		skip++
	}

	pc, _, line, _ := runtime.Caller(skip)
	name := runtime.FuncForPC(pc).Name()
	name = name[strings.LastIndex(name, "/")+1:]

	return &Caller{
		Name: &name,
		Line: &line,
	}
}
