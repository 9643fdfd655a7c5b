package send

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/ameax/json-import-api-go/internal/cmd/base"
	"github.com/ameax/json-import-api-go/internal/config"
	"github.com/ameax/json-import-api-go/pkg/client"
)

type Command struct {
	*base.Command

	flagConfig string
	flagType   string
	flagDryRun bool
}

func (c *Command) Synopsis() string {
	return "Send a document to the Ameax import API"
}

func (c *Command) Help() string {
	return `Usage: ameax-import send [options] <file>

  Reads a JSON or YAML document, validates it and posts it to
  {host}/rest-api/imports. The API key and host come from the config
  file or from AMEAX_API_KEY and AMEAX_API_HOST.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("send", flag.ContinueOnError))

	f.StringVar(&c.flagConfig, "config", "", "Path to the HCL config file")
	f.StringVar(&c.flagType, "type", "",
		"Document type (organization, person, sale, receipt or a full type tag). "+
			"Defaults to meta.document_type of the input.")
	f.BoolVar(&c.flagDryRun, "dry-run", false,
		"Print the document that would be sent instead of sending it.")

	return f
}

func (c *Command) Run(args []string) int {
	ui := c.UI

	f := c.Flags()
	if err := f.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() != 1 {
		ui.Error("exactly one input file is required")
		return 1
	}
	path := f.Arg(0)

	cfg, err := config.LoadFile(c.Fs, c.flagConfig)
	if err != nil {
		ui.Error(fmt.Sprintf("error loading config: %v", err))
		return 1
	}
	c.Log.SetLevel(cfg.Level())

	doc, err := c.LoadDocument(path, c.flagType)
	if err != nil {
		ui.Error(fmt.Sprintf("error reading document: %v", err))
		return 1
	}
	if err := doc.Validate(); err != nil {
		ui.Error(fmt.Sprintf("%s: %v", path, err))
		return 1
	}

	if c.flagDryRun {
		if err := c.PrintJSON(doc.ToMap()); err != nil {
			ui.Error(fmt.Sprintf("error encoding document: %v", err))
			return 1
		}
		return 0
	}

	cc, err := cfg.ClientConfig(c.Log.Named("client"), c.Fs)
	if err != nil {
		ui.Error(fmt.Sprintf("error loading config: %v", err))
		return 1
	}
	api, err := client.New(cc)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	resp, err := api.SendDocument(ctx, doc)
	if err != nil {
		ui.Error(fmt.Sprintf("error sending %s: %v", path, err))
		return 1
	}
	if err := c.PrintJSON(resp); err != nil {
		ui.Error(fmt.Sprintf("error encoding response: %v", err))
		return 1
	}
	return 0
}
