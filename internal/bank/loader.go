package bank

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/titanous/json5"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// EmbeddedSource is the Source of the bank compiled into the binary.
const EmbeddedSource = "embedded"

// SupportedMajor is the only document format major version understood.
const SupportedMajor = "v1"

//go:embed default.json5
var defaultBank []byte

// Default returns the bank compiled into the binary.
func Default() (*Bank, error) {
	return parse(EmbeddedSource, ".json5", defaultBank)
}

// Load reads and validates the bank at path. The extension selects the
// decoder: .json/.json5 or .yaml/.yml.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	return Parse(path, data)
}

// Parse decodes and validates bank data. name is used for error messages
// and to pick the decoder by extension.
func Parse(name string, data []byte) (*Bank, error) {
	return parse(name, strings.ToLower(filepath.Ext(name)), data)
}

func parse(source, ext string, data []byte) (*Bank, error) {
	b, err := decodeBank(ext, data)
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	b.Source = source
	return b, nil
}

// document is the object layout of a bank file.
type document struct {
	Format    string        `json:"format"`
	Title     string        `json:"title"`
	Questions []rawQuestion `json:"questions"`
}

func decodeBank(ext string, data []byte) (*Bank, error) {
	var generic any
	switch ext {
	case ".json", ".json5":
		if err := json5.Unmarshal(data, &generic); err != nil {
			return nil, fmt.Errorf("parse json5: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &generic); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownExtension, ext)
	}

	// Round-trip through encoding/json so both decoders hand the schema
	// validator and the typed decoder the same plain values.
	raw, err := json.Marshal(generic)
	if err != nil {
		return nil, fmt.Errorf("normalize document: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("normalize document: %w", err)
	}
	if err := validateSchema(doc); err != nil {
		return nil, err
	}

	var d document
	if _, isList := doc.([]any); isList {
		if err := json.Unmarshal(raw, &d.Questions); err != nil {
			return nil, fmt.Errorf("decode questions: %w", err)
		}
	} else if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}

	if err := checkFormat(d.Format); err != nil {
		return nil, err
	}

	questions := make([]Question, 0, len(d.Questions))
	for _, rq := range d.Questions {
		questions = append(questions, rq.toQuestion())
	}
	if err := Validate(questions); err != nil {
		return nil, err
	}

	return &Bank{
		Title:     d.Title,
		Format:    d.Format,
		Questions: questions,
	}, nil
}

// checkFormat accepts an empty format or a semver version with the
// supported major.
func checkFormat(format string) error {
	if format == "" {
		return nil
	}
	v := format
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedFormat, format)
	}
	if semver.Major(v) != SupportedMajor {
		return fmt.Errorf("%w: %s (want %s.x)", ErrUnsupportedFormat, format, SupportedMajor)
	}
	return nil
}
