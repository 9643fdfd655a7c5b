package normalize

import (
	"flag"
	"fmt"

	"github.com/ameax/json-import-api-go/internal/cmd/base"
)

type Command struct {
	*base.Command

	flagType string
}

func (c *Command) Synopsis() string {
	return "Print the canonical JSON form of a document"
}

func (c *Command) Help() string {
	return `Usage: ameax-import normalize [options] <file>

  Reads a JSON or YAML document, applies the same normalization the
  client applies (salutations, dates, country codes, legacy field names)
  and prints the payload that would be sent.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("normalize", flag.ContinueOnError))

	f.StringVar(&c.flagType, "type", "",
		"Document type. Defaults to meta.document_type of the input.")

	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() != 1 {
		c.UI.Error("exactly one input file is required")
		return 1
	}

	doc, err := c.LoadDocument(f.Arg(0), c.flagType)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error reading document: %v", err))
		return 1
	}
	if err := c.PrintJSON(doc.ToMap()); err != nil {
		c.UI.Error(fmt.Sprintf("error encoding document: %v", err))
		return 1
	}
	return 0
}
