package main

import (
	"fmt"
	"github.com/bokysan/base45/internal/args"
	"github.com/bokysan/base45/internal/commands/decode"
	"github.com/bokysan/base45/internal/commands/encode"
	"github.com/bokysan/base45/internal/commands/version"
	b45Flags "github.com/bokysan/base45/internal/flags"
	"github.com/bokysan/base45/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"os"
	"path"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// Base45 is the main executable
type Base45 struct {
	parser *flags.Parser
	encode *encode.Command
	decode *decode.Command
}

// NewBase45 will create a new instance of Base45 and initialize the parser
func NewBase45() *Base45 {
	executablePath := path.Base(os.Args[0])

	b := &Base45{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
		encode: encode.NewCommand(),
		decode: decode.NewCommand(),
	}

	b.setupGeneral()
	b.addCommand("version", "Print the version", "Print the application version and exit", &version.Command{})
	b.addCommand("encode", "Encode data into Base45", "Read raw bytes and write their Base45 representation", b.encode)
	b.addCommand("decode", "Decode Base45 text", "Read Base45 text and write the bytes it represents", b.decode)

	return b
}

// setupGeneral will configure general options
func (b *Base45) setupGeneral() {
	if _, err := b.parser.AddGroup("General", "General options", &args.General); err != nil {
		util.MustErrorNilOrExit(errors.WithStack(err))
	}
}

func (b *Base45) addCommand(name, short, long string, data interface{}) {
	_, err := b.parser.AddCommand(name, short, long, data)
	util.MustErrorNilOrExit(err)
}

// main parses the command line, reads the configuration file and runs the selected command
func main() {
	b := NewBase45()
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: fmt.Sprintf("Configuration file %s does not exist.", file),
			})
		}

		args.General.ConfigurationFilePath = file
		return b45Flags.NewYamlParser(b.parser).ParseFile(file)
	}

	_, err := b.parser.Parse()
	util.MustErrorNilOrExit(err)
}
