package flags

import (
	"fmt"
	"github.com/goccy/go-yaml"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"path"
	"reflect"
	"strings"
	"unsafe"
)

// YamlParser is an argument parser for flags package but takes a YAML file instead of a standard INI.
type YamlParser struct {
	parser *flags.Parser
}

// NewYamlParser creates a new yaml parser for a given flags.Parser.
func NewYamlParser(p *flags.Parser) *YamlParser {
	return &YamlParser{
		parser: p,
	}
}

// ParseFile parses options from a yaml formatted file. The returned errors
// can be of the type flags.Error.
func (y *YamlParser) ParseFile(filename string) error {
	body, err := os.Open(filename)

	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if err := body.Close(); err != nil {
			log.Errorf("Could not close %s: %v", filename, err)
		}
	}()

	log.Debugf("Reading configuration from %s", filename)
	return y.Parse(body, yaml.ReferenceDirs(path.Dir(filename)), yaml.RecursiveDir(true))
}

// Parse reads YAML documents one after another from the reader. Multiple documents may be
// separated by triple dashes (`---`); later documents override earlier ones.
func (y *YamlParser) Parse(config io.Reader, opts ...yaml.DecodeOption) error {
	decoder := yaml.NewDecoder(config, opts...)

	for i := 1; ; i++ {
		obj := make(map[string]interface{})
		err := decoder.Decode(&obj)
		if err == io.EOF {
			return nil
		} else if err != nil {
			return errors.Wrapf(err, "Could not decode document at position %v", i)
		}

		if err = y.parseSegment(obj); err != nil {
			return errors.WithStack(err)
		}
	}
}

// parseSegment matches every top level key to a command (e.g. `encode:`) or an option group
// (e.g. `general:`) and unmarshals the value into the options struct behind it.
func (y *YamlParser) parseSegment(obj map[string]interface{}) error {
	for name, val := range obj {
		group := y.findGroup(name)
		if group == nil {
			return errors.WithStack(&flags.Error{
				Type:    flags.ErrUnknownGroup,
				Message: fmt.Sprintf("could not find option command or group '%s'", name),
			})
		}

		if conv, err := yaml.Marshal(val); err != nil {
			return errors.WithStack(err)
		} else if err := yaml.Unmarshal(conv, groupData(group)); err != nil {
			return errors.Wrapf(err, "Could not read options for '%s'", name)
		}
	}
	return nil
}

func (y *YamlParser) findGroup(name string) *flags.Group {
	if command := y.parser.Find(name); command != nil {
		return command.Group
	}
	for _, g := range y.parser.Groups() {
		if strings.EqualFold(g.ShortDescription, name) {
			return g
		}
	}
	return nil
}

// groupData digs out the options struct pointer of a group. The flags library keeps it in an
// unexported field, so reflection is the only way in.
func groupData(group *flags.Group) interface{} {
	dataField := reflect.Indirect(reflect.ValueOf(group)).FieldByName("data")
	dataField = reflect.NewAt(dataField.Type(), unsafe.Pointer(dataField.UnsafeAddr())).Elem()
	return dataField.Elem().Interface()
}
