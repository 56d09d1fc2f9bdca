// Package layoutfile reads and writes layout configurations as TOML, YAML
// or JSON. The format is chosen from the file extension.
package layoutfile

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-splitpane/internal/tree"
)

// Document is the on-disk shape of a layout.
type Document struct {
	Direction tree.Direction `json:"direction" yaml:"direction" toml:"direction"`
	Panes     []tree.Spec    `json:"panes" yaml:"panes" toml:"panes"`
}

// Format names a supported encoding.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
	JSON Format = "json"
)

// FormatOf returns the format for a file name based on its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	default:
		return "", fmt.Errorf("unsupported layout file extension %q", filepath.Ext(path))
	}
}

// Decoder decodes a document from the reader it was created with.
type Decoder interface {
	Decode(v any) error
}

// DecoderFunc creates a strict Decoder for r. Unknown fields are errors.
type DecoderFunc func(r io.Reader) Decoder

// Encoder encodes a document to the writer it was created with.
type Encoder interface {
	Encode(v any) error
}

// EncoderFunc creates an Encoder for w.
type EncoderFunc func(w io.Writer) Encoder

var decoders = map[Format]DecoderFunc{
	TOML: func(r io.Reader) Decoder {
		d := toml.NewDecoder(r)
		d.DisallowUnknownFields()
		return d
	},
	YAML: func(r io.Reader) Decoder {
		d := yaml.NewDecoder(r)
		d.KnownFields(true)
		return d
	},
	JSON: func(r io.Reader) Decoder {
		d := json.NewDecoder(r)
		d.DisallowUnknownFields()
		return d
	},
}

var encoders = map[Format]EncoderFunc{
	TOML: func(w io.Writer) Encoder { return toml.NewEncoder(w) },
	YAML: func(w io.Writer) Encoder {
		e := yaml.NewEncoder(w)
		e.SetIndent(2)
		return e
	},
	JSON: func(w io.Writer) Encoder {
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		return e
	},
}

// Read decodes a document in format f from r.
func Read(r io.Reader, f Format) (Document, error) {
	dec, ok := decoders[f]
	if !ok {
		return Document{}, fmt.Errorf("unsupported layout format %q", f)
	}
	var doc Document
	if err := dec(r).Decode(&doc); err != nil && err != io.EOF {
		return Document{}, fmt.Errorf("decode %s layout: %w", f, err)
	}
	return doc, nil
}

// ReadBytes decodes a document in format f from data.
func ReadBytes(data []byte, f Format) (Document, error) {
	return Read(bytes.NewReader(data), f)
}

// Write encodes doc in format f to w.
func Write(w io.Writer, doc Document, f Format) error {
	enc, ok := encoders[f]
	if !ok {
		return fmt.Errorf("unsupported layout format %q", f)
	}
	e := enc(w)
	if err := e.Encode(doc); err != nil {
		return fmt.Errorf("encode %s layout: %w", f, err)
	}
	if c, ok := e.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Load reads the layout file at path.
func Load(path string) (Document, error) {
	f, err := FormatOf(path)
	if err != nil {
		return Document{}, err
	}
	fp, err := os.Open(path)
	if err != nil {
		return Document{}, err
	}
	defer fp.Close()
	return Read(bufio.NewReader(fp), f)
}

// Save writes doc to path, creating or truncating the file.
func Save(path string, doc Document) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Write(&buf, doc, f); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
