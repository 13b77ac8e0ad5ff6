package anatomy

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"
)

// PartData is the file record for one part (e.g. an entry in assets/anatomy/parts.yaml).
// Position and Size are world units; a zero Size means 1×1×1.
type PartData struct {
	ID          string     `yaml:"id,omitempty"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Type        PartType   `yaml:"type"`
	Layer       Layer      `yaml:"layer"`
	Shape       string     `yaml:"shape,omitempty"`
	Position    [3]float32 `yaml:"position,omitempty"`
	Size        [3]float32 `yaml:"size,omitempty"`
}

// Database is an ordered list of part records.
type Database struct {
	Parts []PartData `yaml:"parts"`
}

// LoadDatabase reads and validates a YAML parts file.
func LoadDatabase(path string) (*Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read database: %w", err)
	}
	db, err := ParseDatabase(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return db, nil
}

// ParseDatabase decodes and validates YAML parts data.
func ParseDatabase(data []byte) (*Database, error) {
	var db Database
	if err := yaml.Unmarshal(data, &db); err != nil {
		return nil, fmt.Errorf("decode database: %w", err)
	}
	if err := db.Validate(); err != nil {
		return nil, err
	}
	return &db, nil
}

// Validate checks every record has a name and a layer in range.
func (d *Database) Validate() error {
	var errs []error
	for i, p := range d.Parts {
		if strings.TrimSpace(p.Name) == "" {
			errs = append(errs, fmt.Errorf("part %d: missing name", i))
		}
		if !p.Layer.Valid() {
			errs = append(errs, fmt.Errorf("part %d (%s): layer %d out of range", i, p.Name, int(p.Layer)))
		}
	}
	return errors.Join(errs...)
}

// Save writes the database as YAML, creating the parent directory if needed.
func (d *Database) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(d)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns a deep copy.
func (d *Database) Clone() (*Database, error) {
	out := &Database{}
	if err := copier.CopyWithOption(out, d, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("clone database: %w", err)
	}
	return out, nil
}

// PartsByType returns records of type t.
func (d *Database) PartsByType(t PartType) []PartData {
	var out []PartData
	for _, p := range d.Parts {
		if p.Type == t {
			out = append(out, p)
		}
	}
	return out
}

// PartsByLayer returns records in layer l.
func (d *Database) PartsByLayer(l Layer) []PartData {
	var out []PartData
	for _, p := range d.Parts {
		if p.Layer == l {
			out = append(out, p)
		}
	}
	return out
}

// FindPartByName returns the first record whose name equals name, ignoring case.
func (d *Database) FindPartByName(name string) (PartData, bool) {
	for _, p := range d.Parts {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return PartData{}, false
}

// Instantiate creates runtime parts for every record, in file order.
// Records without an ID get one derived from the name ("Pectoralis Major" -> "pectoralis_major").
func (d *Database) Instantiate() *Set {
	set := NewSet()
	for _, rec := range d.Parts {
		id := rec.ID
		if id == "" {
			id = Slug(rec.Name)
		}
		p := NewPart(id, rec.Name, rec.Description, rec.Type, rec.Layer)
		if rec.Shape != "" {
			p.Shape = rec.Shape
		}
		p.Position = rl.NewVector3(rec.Position[0], rec.Position[1], rec.Position[2])
		if rec.Size != [3]float32{} {
			p.Size = rl.NewVector3(rec.Size[0], rec.Size[1], rec.Size[2])
		}
		set.Add(p)
	}
	return set
}

// Slug lowercases name and joins its words with underscores.
func Slug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "_")
}
