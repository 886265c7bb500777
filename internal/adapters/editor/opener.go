package editor

import (
	"fmt"
	"os"
	"os/exec"
)

// Opener implements ports.EditorOpener
type Opener struct{}

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{}
}

// OpenFile opens a profile source file in the user's preferred editor
func (o *Opener) OpenFile(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns an exec.Cmd for opening a profile file in the editor.
// This is useful for integrating with bubbletea's ExecProcess
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("profile source not found: %w", err)
	}

	ed := findEditor()
	if ed == "" {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	cmd := exec.Command(ed, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

// findEditor returns the editor to use
func findEditor() string {
	if ed := os.Getenv("EDITOR"); ed != "" {
		return ed
	}
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}

	// Try common editors
	for _, ed := range []string{"nvim", "vim", "vi", "nano", "code"} {
		if path, err := exec.LookPath(ed); err == nil {
			return path
		}
	}

	return ""
}
