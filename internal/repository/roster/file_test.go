package roster

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/person-profile/internal/domain/person"
)

// TestFileRepository_NotFound verifies Load returns ErrNotFound for missing file.
func TestFileRepository_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(filepath.Join(t.TempDir(), "missing.yaml"), 2024)
	people, err := repo.Load(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
	require.Nil(t, people)
}

// TestFileRepository_SaveLoad_Roundtrip ensures Save followed by Load returns equal people.
func TestFileRepository_SaveLoad_Roundtrip(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "people.yaml")
	repo := NewFileRepository(file, 2024)

	tiger, err := person.New("Tiger", "Woods", 1975, "divorced", 200, "Undergraduate")
	require.NoError(t, err)

	want := []*person.Person{
		tiger,
		person.NewMinimal(2024, "Ada", "Lovelace", 120),
	}

	require.NoError(t, repo.Save(context.Background(), want))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)

	_, err = os.Stat(file)
	require.NoError(t, err)
}

// TestFileRepository_Defaults checks that omitted fields fall back to their defaults.
func TestFileRepository_Defaults(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "people.yaml")
	contents := `people:
  - first_name: Ada
    last_name: Lovelace
    weight_pounds: 120
  - first_name: Jason
    last_name: Wilder
    marital_status: YES
    weight_pounds: 180
`
	require.NoError(t, os.WriteFile(file, []byte(contents), 0o600))

	people, err := NewFileRepository(file, 2030).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, people, 2)

	require.Equal(t, 2030, people[0].BirthYear())
	require.Equal(t, person.MaritalSingle, people[0].MaritalStatus())
	require.Equal(t, person.EducationHighSchool, people[0].EducationLevel())

	require.Equal(t, 2030, people[1].BirthYear())
	require.True(t, people[1].IsMarried())
	require.Equal(t, person.EducationHighSchool, people[1].EducationLevel())
}

// TestFileRepository_InvalidEntry reports the index of the rejected entry.
func TestFileRepository_InvalidEntry(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "people.yaml")
	contents := `people:
  - first_name: Santa
    last_name: Claus
    marital_status: maybe
    weight_pounds: 280
`
	require.NoError(t, os.WriteFile(file, []byte(contents), 0o600))

	people, err := NewFileRepository(file, 2024).Load(context.Background())
	require.ErrorIs(t, err, person.ErrInvalidArgument)
	require.ErrorContains(t, err, "roster entry 0 (Santa Claus)")
	require.Nil(t, people)
}
