package roster

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/person-profile/internal/config"
	"github.com/oshokin/person-profile/internal/domain/person"
)

// Repository defines persistence operations for a roster of people.
type Repository interface {
	Load(ctx context.Context) ([]*person.Person, error)
	Save(ctx context.Context, people []*person.Person) error
}

// Entry is the on-disk form of a single person.
// Optional fields select the constructor shape used on load.
type Entry struct {
	FirstName      string  `yaml:"first_name"`
	LastName       string  `yaml:"last_name"`
	BirthYear      int     `yaml:"birth_year,omitempty"`
	MaritalStatus  string  `yaml:"marital_status,omitempty"`
	WeightPounds   float64 `yaml:"weight_pounds"`
	EducationLevel string  `yaml:"education_level,omitempty"`
}

// document is the top-level layout of the roster file.
type document struct {
	People []Entry `yaml:"people"`
}

// FileRepository persists a roster to a YAML file on disk.
type FileRepository struct {
	// path is the filesystem location of the roster file.
	path string
	// currentYear is the birth year of entries that omit one.
	currentYear int
	// mu protects concurrent access to the roster file.
	mu sync.Mutex
}

// ErrNotFound is returned when the roster file does not exist.
var ErrNotFound = errors.New("roster not found")

// NewFileRepository creates a repository that reads/writes YAML at the provided path.
func NewFileRepository(path string, currentYear int) *FileRepository {
	return &FileRepository{
		path:        filepath.Clean(path),
		currentYear: currentYear,
	}
}

// Load reads the roster from disk and builds every person in it.
func (r *FileRepository) Load(_ context.Context) ([]*person.Person, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("read roster file: %w", err)
	}

	var doc document
	if err = yaml.Unmarshal(contents, &doc); err != nil {
		return nil, fmt.Errorf("decode roster file: %w", err)
	}

	people := make([]*person.Person, 0, len(doc.People))

	for i, entry := range doc.People {
		p, err := entry.toDomain(r.currentYear)
		if err != nil {
			return nil, fmt.Errorf("roster entry %d (%s %s): %w", i, entry.FirstName, entry.LastName, err)
		}

		people = append(people, p)
	}

	return people, nil
}

// Save writes the roster to disk.
func (r *FileRepository) Save(_ context.Context, people []*person.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc := document{
		People: make([]Entry, 0, len(people)),
	}

	for _, p := range people {
		doc.People = append(doc.People, fromDomain(p))
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("encode roster: %w", err)
	}

	if err = os.WriteFile(r.path, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write roster file: %w", err)
	}

	return nil
}

// toDomain picks the constructor shape matching the fields that are set.
func (e *Entry) toDomain(currentYear int) (*person.Person, error) {
	if e.MaritalStatus == "" && e.EducationLevel == "" && e.BirthYear == 0 {
		return person.NewMinimal(currentYear, e.FirstName, e.LastName, e.WeightPounds), nil
	}

	attrs := person.Attributes{
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		BirthYear:      e.BirthYear,
		MaritalStatus:  e.MaritalStatus,
		WeightPounds:   e.WeightPounds,
		EducationLevel: e.EducationLevel,
	}

	return attrs.WithDefaults(currentYear).Build()
}

// fromDomain converts a person into its on-disk form.
func fromDomain(p *person.Person) Entry {
	return Entry{
		FirstName:      p.FirstName(),
		LastName:       p.LastName(),
		BirthYear:      p.BirthYear(),
		MaritalStatus:  p.MaritalStatusText(),
		WeightPounds:   p.Weight(),
		EducationLevel: p.EducationLevelText(),
	}
}
