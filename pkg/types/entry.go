package types

import "fmt"

// Status is the classification of a repository entry relative to the target directory
type Status string

const (
	// StatusLinked means a symlink (dangling or not) sits at the target path
	StatusLinked Status = "linked"

	// StatusConflict means something that is not a symlink sits at the target path
	StatusConflict Status = "conflict"

	// StatusMissing means nothing sits at the target path
	StatusMissing Status = "missing"
)

// Short returns the compact marker used by the list output.
func (s Status) Short() string {
	switch s {
	case StatusLinked:
		return "ok"
	case StatusConflict:
		return "C"
	case StatusMissing:
		return "!"
	default:
		return "?"
	}
}

// Entry is one file found directly under the repository root.
type Entry struct {
	// Name is the base filename, shared by source and target
	Name string `json:"name"`

	// SourcePath is the absolute path inside the repository
	SourcePath string `json:"source"`

	// TargetPath is the absolute path inside the target directory
	TargetPath string `json:"target"`

	Status Status `json:"status"`

	// LinkDest is what the symlink at TargetPath points to, when Linked
	LinkDest string `json:"linkDest,omitempty"`
}

func (e Entry) String() string {
	return fmt.Sprintf("%-4s %s", e.Status.Short(), e.Name)
}

// PointsToSource reports whether a Linked entry's symlink resolves to its source.
func (e Entry) PointsToSource() bool {
	return e.Status == StatusLinked && e.LinkDest == e.SourcePath
}

// FilterByStatus returns the entries holding the given status, preserving order.
func FilterByStatus(entries []Entry, status Status) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Status == status {
			out = append(out, e)
		}
	}
	return out
}
