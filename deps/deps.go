// Package deps checks for required external binaries.
package deps

import (
	"fmt"
	"os/exec"
)

const (
	MpvInstallURL = "https://mpv.io/installation/"
)

// DependencyError contains information about a missing dependency
type DependencyError struct {
	Name       string
	InstallURL string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s not found. Install from: %s", e.Name, e.InstallURL)
}

// CheckMpv checks if mpv is installed and available in PATH
func CheckMpv() error {
	_, err := exec.LookPath("mpv")
	if err != nil {
		return &DependencyError{
			Name:       "mpv",
			InstallURL: MpvInstallURL,
		}
	}
	return nil
}
