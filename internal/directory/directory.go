// Package directory holds the in-memory entity dataset searched by the portal.
package directory

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/imobiliaria/portal-locacao/internal/model"
)

//go:embed data/directory.yaml
var defaultData []byte

// Directory is the searchable dataset, one slice per collection in source order.
type Directory struct {
	Locadores  []model.Locador   `yaml:"locadores"`
	Locatarios []model.Locatario `yaml:"locatarios"`
	Imoveis    []model.Imovel    `yaml:"imoveis"`
	Contratos  []model.Contrato  `yaml:"contratos"`
}

// Default returns the embedded dataset.
func Default() (*Directory, error) {
	return Parse(defaultData)
}

// Load reads a YAML dataset from path. An empty path loads the embedded default.
func Load(path string) (*Directory, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML dataset. Unknown keys are rejected so typos in the
// file surface at startup.
func Parse(data []byte) (*Directory, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var d Directory
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("failed to parse directory: %w", err)
	}
	return &d, nil
}

// Collection returns the records of one kind as entities, in source order.
func (d *Directory) Collection(kind model.EntityKind) []model.Entity {
	var out []model.Entity
	switch kind {
	case model.KindLocador:
		out = make([]model.Entity, 0, len(d.Locadores))
		for _, e := range d.Locadores {
			out = append(out, e)
		}
	case model.KindLocatario:
		out = make([]model.Entity, 0, len(d.Locatarios))
		for _, e := range d.Locatarios {
			out = append(out, e)
		}
	case model.KindImovel:
		out = make([]model.Entity, 0, len(d.Imoveis))
		for _, e := range d.Imoveis {
			out = append(out, e)
		}
	case model.KindContrato:
		out = make([]model.Entity, 0, len(d.Contratos))
		for _, e := range d.Contratos {
			out = append(out, e)
		}
	}
	return out
}

// Names returns every display name, used for search suggestions.
func (d *Directory) Names() []string {
	var names []string
	for _, kind := range model.EntityKinds {
		for _, e := range d.Collection(kind) {
			names = append(names, e.DisplayName())
		}
	}
	return names
}

// Len returns the total number of records.
func (d *Directory) Len() int {
	return len(d.Locadores) + len(d.Locatarios) + len(d.Imoveis) + len(d.Contratos)
}
