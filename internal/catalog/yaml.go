package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/victornm/themequiz/internal/domain"
)

//go:embed quizzes.yaml
var builtin []byte

type document struct {
	Quizzes []domain.Quiz `yaml:"quizzes"`
}

// Builtin returns the catalog shipped with the binary.
func Builtin() (*Catalog, error) {
	return LoadYAML(bytes.NewReader(builtin))
}

// BuiltinQuizzes returns the quizzes shipped with the binary, without building a catalog.
func BuiltinQuizzes() ([]domain.Quiz, error) {
	return decodeYAML(bytes.NewReader(builtin))
}

// LoadFile reads a YAML catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer f.Close()

	return LoadYAML(f)
}

// LoadYAML decodes a catalog document of the form `quizzes: [...]`.
func LoadYAML(r io.Reader) (*Catalog, error) {
	qs, err := decodeYAML(r)
	if err != nil {
		return nil, err
	}

	return New(qs)
}

func decodeYAML(r io.Reader) ([]domain.Quiz, error) {
	var doc document

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("catalog: decode yaml: %w", err)
	}

	return doc.Quizzes, nil
}
