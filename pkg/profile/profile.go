// Package profile provides reusable blueprints for creating Akoma Ntoso
// documents with pre-filled type, identification and metadata values.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/coolbeans/acta/pkg/akn"
)

// Profile describes how to create a document: the document type and version
// plus the FRBR URI coordinates and metadata the new document starts with.
// Blank coordinates keep the skeleton defaults.
type Profile struct {
	// Metadata
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Document configuration
	Type    string `yaml:"type" json:"type"`
	Version string `yaml:"version,omitempty" json:"version,omitempty"`
	Title   string `yaml:"title,omitempty" json:"title,omitempty"`

	// FRBR URI coordinates
	Country  string `yaml:"country,omitempty" json:"country,omitempty"`
	Locality string `yaml:"locality,omitempty" json:"locality,omitempty"`
	Subtype  string `yaml:"subtype,omitempty" json:"subtype,omitempty"`
	Actor    string `yaml:"actor,omitempty" json:"actor,omitempty"`
	Date     string `yaml:"date,omitempty" json:"date,omitempty"`
	Number   string `yaml:"number,omitempty" json:"number,omitempty"`
	Language string `yaml:"language,omitempty" json:"language,omitempty"`
}

// Validate checks that the profile has all required fields and that its
// document type and version are known.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("profile name is required")
	}
	if p.Type == "" {
		return fmt.Errorf("profile type is required")
	}
	if _, ok := akn.ForDocumentType(p.Type); !ok {
		return fmt.Errorf("unknown document type %q", p.Type)
	}
	if p.Version != "" {
		if _, ok := akn.AKNNamespaces[p.Version]; !ok {
			return fmt.Errorf("unknown Akoma Ntoso version %q", p.Version)
		}
	}
	if p.Date != "" {
		if _, err := time.Parse("2006-01-02", p.Date); err != nil {
			return fmt.Errorf("invalid profile date %q", p.Date)
		}
	}
	return nil
}

// Build creates a new document from the profile: an empty skeleton of the
// profile's type and version with the profile's language, FRBR URI
// coordinates, work date and title applied.
func (p *Profile) Build() (*akn.StructuredDocument, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}

	typ, _ := akn.ForDocumentType(p.Type)
	version := p.Version
	if version == "" {
		version = akn.DefaultVersion
	}

	xml, err := akn.EmptyDocument(typ, version)
	if err != nil {
		return nil, err
	}
	doc, err := akn.NewStructuredDocument(typ, []byte(xml))
	if err != nil {
		return nil, err
	}

	// Set the language first so the URI synchronization below picks it up.
	if p.Language != "" {
		code, err := akn.NormalizeLanguage(p.Language)
		if err != nil {
			return nil, err
		}
		if err := doc.SetLanguage(code); err != nil {
			return nil, err
		}
	}

	uri, err := doc.FrbrURI()
	if err != nil {
		return nil, err
	}
	if p.Country != "" {
		uri.Country = p.Country
	}
	if p.Locality != "" {
		uri.Locality = p.Locality
	}
	if p.Subtype != "" {
		uri.Subtype = p.Subtype
	}
	if p.Actor != "" {
		uri.Actor = p.Actor
	}
	if p.Date != "" {
		uri.Date = p.Date
	}
	if p.Number != "" {
		uri.Number = p.Number
	}
	if err := doc.SetFrbrURI(uri); err != nil {
		return nil, err
	}

	if p.Date != "" {
		when, err := time.Parse("2006-01-02", p.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid profile date %q", p.Date)
		}
		if err := doc.SetWorkDate(when); err != nil {
			return nil, err
		}
	}

	if p.Title != "" {
		if err := doc.SetTitle(p.Title); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// FromYAML deserializes YAML bytes into a Profile.
func FromYAML(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse YAML profile: %w", err)
	}
	return &p, nil
}

// ToYAML serializes the profile to YAML bytes.
func (p *Profile) ToYAML() ([]byte, error) {
	return yaml.Marshal(p)
}

// ToJSON serializes the profile to indented JSON bytes.
func (p *Profile) ToJSON() ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// LoadFromFile reads a YAML profile from disk.
func LoadFromFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}
	return FromYAML(data)
}

// SaveToFile writes the profile to a YAML file on disk.
func (p *Profile) SaveToFile(path string) error {
	data, err := p.ToYAML()
	if err != nil {
		return fmt.Errorf("failed to serialize profile to YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write profile file %s: %w", path, err)
	}
	return nil
}
