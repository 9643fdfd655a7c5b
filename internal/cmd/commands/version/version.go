package version

import (
	"github.com/ameax/json-import-api-go/internal/cmd/base"
	"github.com/ameax/json-import-api-go/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the version"
}

func (c *Command) Help() string {
	return "Usage: ameax-import version"
}

func (c *Command) Run(args []string) int {
	c.UI.Output("ameax-import v" + version.Version)
	return 0
}
