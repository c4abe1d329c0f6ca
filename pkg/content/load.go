package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the content file at path. An empty path returns the built-in
// content.
func Load(path string) (*Content, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFromFile(path)
}

// LoadFromFile reads content from a YAML file. Relative resume paths are
// resolved against the file's directory.
func LoadFromFile(path string) (*Content, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("no content file found at %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if c.Resume != "" && !filepath.IsAbs(c.Resume) {
		c.Resume = filepath.Join(filepath.Dir(path), c.Resume)
	}
	return c, nil
}

// Parse decodes a YAML document. Keys missing from the document keep the
// built-in values, so a file may override just the name or the skills.
func Parse(data []byte) (*Content, error) {
	c := &Content{}
	if len(defaultYAML) > 0 && !bytes.Equal(data, defaultYAML) {
		if err := decode(defaultYAML, c); err != nil {
			return nil, err
		}
	}
	if err := decode(data, c); err != nil {
		return nil, err
	}
	c.normalize()
	return c, nil
}

func decode(data []byte, c *Content) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse content: %w", err)
	}
	return nil
}
