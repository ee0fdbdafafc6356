package validation

import (
	"strings"

	"go.scnd.dev/open/forge/package/spec"
)

type Code string

const (
	CodeMissingModule Code = "MISSING_MODULE"
	CodeMissingGoal   Code = "MISSING_GOAL"
	CodeInvalidModule Code = "INVALID_MODULE"
)

var Messages = map[Code]string{
	CodeMissingModule: "module field is required",
	CodeMissingGoal:   "goal field is required",
	CodeInvalidModule: "module field must be a non-empty string",
}

type Issue struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

// Result lists every problem found, in rule order. Empty means valid.
type Result struct {
	Issues []*Issue `json:"issues"`
}

func (r *Result) Valid() bool {
	return len(r.Issues) == 0
}

func (r *Result) Errors() []string {
	errors := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		errors = append(errors, issue.Message)
	}
	return errors
}

func (r *Result) add(code Code) {
	r.Issues = append(r.Issues, &Issue{
		Code:    code,
		Message: Messages[code],
	})
}

// Validate checks the required fields of a specification. Every rule runs,
// so callers see all problems at once.
func Validate(tree *spec.Tree) *Result {
	result := &Result{
		Issues: make([]*Issue, 0),
	}

	if !tree.Has("module") {
		result.add(CodeMissingModule)
	}

	if !tree.Has("goal") {
		result.add(CodeMissingGoal)
	}

	// * present but unusable module
	if tree.Has("module") {
		module := tree.Lookup("module")
		text, _ := spec.Text(module)
		if !spec.IsString(module) || strings.TrimSpace(text) == "" {
			result.add(CodeInvalidModule)
		}
	}

	return result
}
