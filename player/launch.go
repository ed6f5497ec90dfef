package player

import (
	"os/exec"

	"github.com/user/cloudtune-cli/deps"
)

// Launch starts an idle, headless mpv process with IPC enabled.
// It checks that mpv is installed first and returns an error with install link if not.
// Returns the *exec.Cmd for the running process which can be used for cleanup.
func Launch(socketPath string) (*exec.Cmd, error) {
	if socketPath == "" {
		socketPath = DefaultSocketPath
	}

	// Check that mpv is installed
	if err := deps.CheckMpv(); err != nil {
		return nil, err
	}

	// Audio only, no playlist yet: idle keeps the process alive between tracks
	cmd := exec.Command("mpv",
		"--idle",
		"--no-video",
		"--no-terminal",
		"--input-ipc-server="+socketPath,
	)

	// Start the process (non-blocking)
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	return cmd, nil
}
