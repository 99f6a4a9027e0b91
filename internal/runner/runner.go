// Package runner implements the placeholder program emitted into freshly
// scaffolded projects: a no-op unit of work that reports its outcome.
package runner

import "fmt"

// RunResult describes the outcome of a run
type RunResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Run executes the placeholder unit of work. It cannot fail and returns
// the same result on every call.
func Run() RunResult {
	return RunResult{
		Status:  "success",
		Message: "Hello from Rust project!",
	}
}

// String renders the debug representation printed by the stub binary
func (r RunResult) String() string {
	return fmt.Sprintf("RunResult { status: %q, message: %q }", r.Status, r.Message)
}
