package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/ameax/json-import-api-go/internal/cmd/base"
	"github.com/ameax/json-import-api-go/internal/cmd/commands/normalize"
	"github.com/ameax/json-import-api-go/internal/cmd/commands/send"
	"github.com/ameax/json-import-api-go/internal/cmd/commands/validate"
	"github.com/ameax/json-import-api-go/internal/cmd/commands/version"
)

// Commands returns the subcommand factories. Each command gets a logger
// named after it. A nil fs means the OS filesystem.
func Commands(log hclog.Logger, ui cli.Ui, fs afero.Fs) map[string]cli.CommandFactory {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	cmd := func(name string) *base.Command {
		return base.NewCommand(log.Named(name), ui, fs)
	}

	return map[string]cli.CommandFactory{
		"send": func() (cli.Command, error) {
			return &send.Command{Command: cmd("send")}, nil
		},
		"validate": func() (cli.Command, error) {
			return &validate.Command{Command: cmd("validate")}, nil
		},
		"normalize": func() (cli.Command, error) {
			return &normalize.Command{Command: cmd("normalize")}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: cmd("version")}, nil
		},
	}
}
