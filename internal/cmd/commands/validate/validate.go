package validate

import (
	"errors"
	"flag"
	"fmt"

	"github.com/ameax/json-import-api-go/internal/cmd/base"
	"github.com/ameax/json-import-api-go/pkg/models"
	"github.com/ameax/json-import-api-go/pkg/schema"
)

type Command struct {
	*base.Command

	flagType    string
	flagSchema  string
	flagSchemas string
}

func (c *Command) Synopsis() string {
	return "Validate a document without sending it"
}

func (c *Command) Help() string {
	return `Usage: ameax-import validate [options] <file>

  Builds the document, checks its required fields and, when a schema is
  given, validates the serialized form against it. Every violation is
  printed on its own line.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("validate", flag.ContinueOnError))

	f.StringVar(&c.flagType, "type", "",
		"Document type. Defaults to meta.document_type of the input.")
	f.StringVar(&c.flagSchema, "schema", "", "Path to a JSON schema file")
	f.StringVar(&c.flagSchemas, "schemas", "",
		"Directory holding <document_type>.json schemas; ignored when -schema is set")

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

	doc, err := c.LoadDocument(path, c.flagType)
	if err != nil {
		ui.Error(fmt.Sprintf("error reading document: %v", err))
		return 1
	}

	var problems []string
	collect := func(err error) bool {
		if err == nil {
			return true
		}
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			problems = append(problems, verr.Errors...)
			return true
		}
		ui.Error(err.Error())
		return false
	}

	if !collect(doc.Validate()) {
		return 1
	}

	schemaPath := c.flagSchema
	if schemaPath == "" && c.flagSchemas != "" {
		schemaPath = schema.PathFor(c.flagSchemas, doc.DocumentType())
	}
	if schemaPath != "" {
		c.Log.Debug("validating against schema", "schema", schemaPath)
		if !collect(schema.NewValidator(c.Fs).Validate(doc.ToMap(), schemaPath)) {
			return 1
		}
	}

	if len(problems) > 0 {
		for _, p := range problems {
			ui.Error(fmt.Sprintf("%s: %s", path, p))
		}
		return 1
	}

	ui.Output(fmt.Sprintf("%s: valid %s", path, doc.DocumentType()))
	return 0
}
