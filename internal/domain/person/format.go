package person

import (
	"fmt"
	"io"
	"strings"
)

// kilogramsPerPound is the conversion factor used for metric output.
const kilogramsPerPound = 0.453592

const (
	unitPounds    = "pounds"
	unitKilograms = "kilograms"
)

// PoundsToKilograms converts a weight in pounds to kilograms.
func PoundsToKilograms(pounds float64) float64 {
	return pounds * kilogramsPerPound
}

// Describe renders the person as a single sentence.
//
// With useUppercase the name, marital status, article and education level are
// upper-cased; otherwise the name and marital status are lower-cased and the
// education level keeps the spelling it was supplied with.
func (p *Person) Describe(useKilograms, useUppercase bool) string {
	var (
		name      = p.firstName + " " + p.lastName
		marital   = p.maritalText
		article   = p.education.Article()
		education = p.educationText
	)

	if useUppercase {
		name = strings.ToUpper(name)
		marital = strings.ToUpper(marital)
		article = strings.ToUpper(article)
		education = strings.ToUpper(education)
	} else {
		name = strings.ToLower(name)
		marital = strings.ToLower(marital)
	}

	weight, unit := p.weightPounds, unitPounds
	if useKilograms {
		weight, unit = PoundsToKilograms(p.weightPounds), unitKilograms
	}

	return fmt.Sprintf(
		"%s (%s) was born in %d, weighs %.1f %s, and has %s %s %s!",
		name,
		marital,
		p.birthYear,
		weight,
		unit,
		article,
		education,
		p.education.Credential(),
	)
}

// PrintDetails writes the description in pounds and lower case.
func (p *Person) PrintDetails(w io.Writer) error {
	return p.PrintDetailsFormatted(w, false, false)
}

// PrintDetailsInUnits writes the lower-case description in the chosen unit.
func (p *Person) PrintDetailsInUnits(w io.Writer, useKilograms bool) error {
	return p.PrintDetailsFormatted(w, useKilograms, false)
}

// PrintDetailsFormatted writes the description followed by a newline.
func (p *Person) PrintDetailsFormatted(w io.Writer, useKilograms, useUppercase bool) error {
	if _, err := fmt.Fprintln(w, p.Describe(useKilograms, useUppercase)); err != nil {
		return fmt.Errorf("print details: %w", err)
	}

	return nil
}
