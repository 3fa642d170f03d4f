package asset

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed behavior/*.tengo
var behaviorFS embed.FS

const behaviorExt = ".tengo"

// Behavior returns the source of a bundled enemy behavior script by name
func Behavior(name string) ([]byte, error) {
	src, err := behaviorFS.ReadFile("behavior/" + name + behaviorExt)
	if err != nil {
		return nil, fmt.Errorf("behavior %q: %w", name, err)
	}
	return src, nil
}

// Behaviors lists bundled behavior script names
func Behaviors() []string {
	entries, err := fs.ReadDir(behaviorFS, "behavior")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if n, ok := strings.CutSuffix(e.Name(), behaviorExt); ok {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}
