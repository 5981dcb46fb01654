package demo

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/person-profile/internal/config"
	"github.com/oshokin/person-profile/internal/domain/person"
)

// fixedNow pins the clock for deterministic birth years.
func fixedNow() time.Time {
	return time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)
}

// TestFixtures builds the three sample people.
func TestFixtures(t *testing.T) {
	t.Parallel()

	people, err := Fixtures()
	require.NoError(t, err)
	require.Len(t, people, 3)
	require.Equal(t, "Tiger", people[0].FirstName())
	require.Equal(t, "Jason", people[1].FirstName())
	require.Equal(t, "Santa", people[2].FirstName())
	require.True(t, people[2].IsMarried())
}

// TestPrint emits the six lines in the demonstration order.
func TestPrint(t *testing.T) {
	t.Parallel()

	p, err := person.New("Tiger", "Woods", 1975, "divorced", 200, "undergraduate")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, p))

	want := []string{
		"tiger woods (divorced) was born in 1975, weighs 200.0 pounds, and has an undergraduate degree!",
		"tiger woods (divorced) was born in 1975, weighs 90.7 kilograms, and has an undergraduate degree!",
		"TIGER WOODS (DIVORCED) was born in 1975, weighs 90.7 kilograms, and has AN UNDERGRADUATE degree!",
		"tiger woods (divorced) was born in 1975, weighs 90.7 kilograms, and has an undergraduate degree!",
		"TIGER WOODS (DIVORCED) was born in 1975, weighs 200.0 pounds, and has AN UNDERGRADUATE degree!",
		"tiger woods (divorced) was born in 1975, weighs 200.0 pounds, and has an undergraduate degree!",
	}
	require.Equal(t, strings.Join(want, "\n")+"\n", buf.String())
}

// TestRun_Fixtures prints every sample person when no roster is configured.
func TestRun_Fixtures(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := Run(context.Background(), &buf, &Options{
		ConfigPath: filepath.Join(t.TempDir(), config.DefaultConfigFilename),
		Now:        fixedNow,
		Plain:      true,
	})
	// An explicitly named config that does not exist is an error.
	require.Error(t, err)

	buf.Reset()

	require.NoError(t, Run(context.Background(), &buf, &Options{Now: fixedNow, Plain: true}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 18)
	require.Equal(t, "santa claus (yes) was born in 1000, weighs 280.0 pounds, and has a high school diploma!", lines[12])
}

// TestRun_Roster describes people from a roster file using the configured year.
func TestRun_Roster(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rosterPath := filepath.Join(dir, "people.yaml")
	require.NoError(t, os.WriteFile(rosterPath, []byte("people:\n  - first_name: Ada\n    last_name: Lovelace\n    weight_pounds: 120\n"), 0o600))

	cfgPath := filepath.Join(dir, "settings.yaml")
	require.NoError(t, config.Save(cfgPath, &config.Config{CurrentYear: 2024, RosterFile: rosterPath}))

	var buf bytes.Buffer
	require.NoError(t, Run(context.Background(), &buf, &Options{ConfigPath: cfgPath, Now: fixedNow}))

	out := buf.String()
	require.Contains(t, out, "Ada Lovelace")
	require.Contains(t, out, "ada lovelace (no) was born in 2024, weighs 120.0 pounds, and has a high school diploma!")
}

// TestRun_MissingRoster surfaces a missing roster file.
func TestRun_MissingRoster(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := Run(context.Background(), &buf, &Options{
		RosterFile: filepath.Join(t.TempDir(), "missing.yaml"),
		Now:        fixedNow,
	})
	require.Error(t, err)
	require.Empty(t, buf.String())
}
