// Package base holds what every ameax-import subcommand shares.
package base

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
)

// Command is embedded by every subcommand.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui
	Fs  afero.Fs
}

// NewCommand returns a Command writing to ui. A nil fs means the OS
// filesystem.
func NewCommand(log hclog.Logger, ui cli.Ui, fs afero.Fs) *Command {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Command{Log: log, UI: ui, Fs: fs}
}
