package backend

import (
	"path/filepath"

	"github.com/arthur-debert/dots/pkg/logging"
	"github.com/arthur-debert/dots/pkg/types"
)

// Kind identifies a version-control backend
type Kind string

const (
	KindUnknown Kind = "unknown"
	KindGit     Kind = "git"
	KindHg      Kind = "hg"
)

// Marker ties a metadata directory name to the backend that owns it
type Marker struct {
	Name string
	Kind Kind
}

// Markers is the scan order used by Detect. When several markers coexist
// the first one listed wins.
var Markers = []Marker{
	{Name: ".git", Kind: KindGit},
	{Name: ".hg", Kind: KindHg},
}

// MarkerNames returns the names of all known marker directories
func MarkerNames() []string {
	names := make([]string, len(Markers))
	for i, m := range Markers {
		names[i] = m.Name
	}
	return names
}

// IsMarker reports whether name is a known backend marker
func IsMarker(name string) bool {
	for _, m := range Markers {
		if m.Name == name {
			return true
		}
	}
	return false
}

// Marker returns the metadata directory name for the kind, or "" for KindUnknown
func (k Kind) Marker() string {
	for _, m := range Markers {
		if m.Kind == k {
			return m.Name
		}
	}
	return ""
}

func (k Kind) String() string {
	return string(k)
}

// Detect returns the kind of the first marker directory found directly
// under root, or KindUnknown.
func Detect(fs types.FS, root string) Kind {
	logger := logging.GetLogger("backend.detect")

	for _, m := range Markers {
		info, err := fs.Stat(filepath.Join(root, m.Name))
		if err != nil || !info.IsDir() {
			continue
		}
		logger.Debug().
			Str("root", root).
			Str("marker", m.Name).
			Str("kind", string(m.Kind)).
			Msg("Backend detected")
		return m.Kind
	}

	logger.Debug().Str("root", root).Msg("No backend marker found")
	return KindUnknown
}
