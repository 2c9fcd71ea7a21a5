// Package source loads chart payloads and configurations from files.
//
// A payload bundles the optional configuration, the group infos, the rows
// and an optional band. It is read from JSON, YAML or an XLSX workbook.
package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vdobler/kpichart"
	"github.com/vdobler/kpichart/data"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFileType is returned for files other than .json, .yaml, .yml
// and .xlsx.
var ErrUnknownFileType = errors.New("unknown file type")

// Payload is the complete input of one chart.
type Payload struct {
	Config *kpichart.PartialConfig `json:"config,omitempty" yaml:"config,omitempty"`
	Groups []kpichart.GroupInfo    `json:"groups" yaml:"groups"`
	Rows   []data.Row              `json:"rows" yaml:"rows"`
	Band   *kpichart.Band          `json:"band,omitempty" yaml:"band,omitempty"`
}

// Apply feeds p into c: the configuration and band first, then the data.
// Without a configuration in p, c must already be configured.
func (p *Payload) Apply(c *kpichart.Chart) (*kpichart.Geometry, error) {
	if p.Config != nil && !p.Config.IsEmpty() {
		if _, err := c.UpdateConfig(*p.Config); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}
	if p.Band != nil {
		if _, err := c.SetBand(p.Band); err != nil {
			return nil, fmt.Errorf("band: %w", err)
		}
	}
	return c.UpdateData(p.Groups, p.Rows)
}

// ReadJSON decodes a payload from JSON.
func ReadJSON(r io.Reader) (*Payload, error) {
	p := &Payload{}
	dec := json.NewDecoder(r)
	if err := dec.Decode(p); err != nil {
		return nil, fmt.Errorf("decoding JSON payload: %w", err)
	}
	return p, nil
}

// ReadYAML decodes a payload from YAML.
func ReadYAML(r io.Reader) (*Payload, error) {
	p := &Payload{}
	if err := yaml.NewDecoder(r).Decode(p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding YAML payload: %w", err)
	}
	return p, nil
}

// Load reads the payload in path, selecting the decoder by file extension.
func Load(path string) (*Payload, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx":
		return ReadWorkbook(path)
	case ".json", ".yaml", ".yml":
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if ext == ".json" {
			return ReadJSON(bytes.NewReader(b))
		}
		return ReadYAML(bytes.NewReader(b))
	default:
		return nil, fmt.Errorf("%s: %w %q", path, ErrUnknownFileType, ext)
	}
}

// ReadConfig reads a configuration from a YAML or JSON file. Unknown keys
// are an error.
func ReadConfig(path string) (kpichart.PartialConfig, error) {
	var p kpichart.PartialConfig
	f, err := os.Open(path)
	if err != nil {
		return p, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return p, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// WriteJSON writes p as indented JSON.
func WriteJSON(w io.Writer, p *Payload) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}
