package types

// RepositoryContext is resolved once per invocation and passed explicitly
// to every operation that needs to know where things live.
type RepositoryContext struct {
	// Root is the absolute repository path
	Root string `json:"root"`

	// TargetDir is the absolute directory symlinks are created in
	TargetDir string `json:"targetDir"`

	// ConfigPath is the absolute path of the repository's .dots file
	ConfigPath string `json:"configPath"`

	// TargetFromConfig is true when TargetDir came from the .dots file
	TargetFromConfig bool `json:"targetFromConfig"`
}
