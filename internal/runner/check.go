package runner

import (
	"fmt"
	"os/exec"
	"strings"
)

// Binary returns the executable a named runner needs on PATH. The skip
// runner needs none.
func Binary(name string) (string, error) {
	switch name {
	case NameDocker, NamePodman:
		return name, nil
	case NameHost:
		return "sh", nil
	case NameSkip:
		return "", nil
	default:
		return "", fmt.Errorf("unknown runner %q: supported runners are %s", name, strings.Join(Names(), ", "))
	}
}

// Check looks up the executable the named runner needs and returns its path.
// The path is empty for runners that execute nothing.
func Check(name string) (string, error) {
	bin, err := Binary(name)
	if err != nil || bin == "" {
		return "", err
	}
	path, err := exec.LookPath(bin)
	if err != nil {
		return "", fmt.Errorf("%s runner requires %s on PATH: %w", name, bin, err)
	}
	return path, nil
}
