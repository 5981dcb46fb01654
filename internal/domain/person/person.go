package person

// Attributes holds the raw inputs a Person is built from.
// Every constructor funnels through Build so validation always sees
// the values that are about to be stored.
type Attributes struct {
	FirstName      string
	LastName       string
	BirthYear      int
	MaritalStatus  string
	WeightPounds   float64
	EducationLevel string
}

// Build validates the attributes and returns a Person holding them.
// Nothing is constructed unless both enumerated attributes parse.
func (a Attributes) Build() (*Person, error) {
	marital, err := ParseMaritalStatus(a.MaritalStatus)
	if err != nil {
		return nil, err
	}

	education, err := ParseEducationLevel(a.EducationLevel)
	if err != nil {
		return nil, err
	}

	return &Person{
		firstName:     a.FirstName,
		lastName:      a.LastName,
		birthYear:     a.BirthYear,
		marital:       marital,
		maritalText:   a.MaritalStatus,
		weightPounds:  a.WeightPounds,
		education:     education,
		educationText: a.EducationLevel,
	}, nil
}

// WithDefaults fills omitted optional attributes: a zero birth year becomes
// currentYear and empty enumerations become their defaults.
func (a Attributes) WithDefaults(currentYear int) Attributes {
	if a.BirthYear == 0 {
		a.BirthYear = currentYear
	}

	if a.MaritalStatus == "" {
		a.MaritalStatus = DefaultMaritalStatus
	}

	if a.EducationLevel == "" {
		a.EducationLevel = DefaultEducationLevel
	}

	return a
}

// Person is an individual with identity and demographic attributes.
// Names and birth year are fixed at construction.
// A Person is not safe for concurrent mutation.
type Person struct {
	firstName string
	lastName  string
	birthYear int

	marital MaritalStatus
	// maritalText is the spelling the marital status was supplied with.
	maritalText string

	weightPounds float64

	education EducationLevel
	// educationText is the spelling the education level was supplied with.
	educationText string
}

// New creates a Person with every attribute given explicitly.
func New(
	firstName, lastName string,
	birthYear int,
	maritalStatus string,
	weightPounds float64,
	educationLevel string,
) (*Person, error) {
	return Attributes{
		FirstName:      firstName,
		LastName:       lastName,
		BirthYear:      birthYear,
		MaritalStatus:  maritalStatus,
		WeightPounds:   weightPounds,
		EducationLevel: educationLevel,
	}.Build()
}

// NewBornIn creates a Person whose birth year is currentYear.
func NewBornIn(
	currentYear int,
	firstName, lastName, maritalStatus string,
	weightPounds float64,
	educationLevel string,
) (*Person, error) {
	return New(firstName, lastName, currentYear, maritalStatus, weightPounds, educationLevel)
}

// NewMinimal creates a single Person born in currentYear with a high school diploma.
func NewMinimal(currentYear int, firstName, lastName string, weightPounds float64) *Person {
	p, err := NewBornIn(currentYear, firstName, lastName, DefaultMaritalStatus, weightPounds, DefaultEducationLevel)
	if err != nil {
		// Defaults are members of their enumerations.
		panic(err)
	}

	return p
}

// FirstName returns the first name as supplied.
func (p *Person) FirstName() string {
	return p.firstName
}

// LastName returns the last name as supplied.
func (p *Person) LastName() string {
	return p.lastName
}

// BirthYear returns the year the person was born.
func (p *Person) BirthYear() int {
	return p.birthYear
}

// MaritalStatus returns the parsed marital status.
func (p *Person) MaritalStatus() MaritalStatus {
	return p.marital
}

// MaritalStatusText returns the marital status with its original spelling.
func (p *Person) MaritalStatusText() string {
	return p.maritalText
}

// Weight returns the weight in pounds.
func (p *Person) Weight() float64 {
	return p.weightPounds
}

// EducationLevel returns the parsed education level.
func (p *Person) EducationLevel() EducationLevel {
	return p.education
}

// EducationLevelText returns the education level with its original spelling.
func (p *Person) EducationLevelText() string {
	return p.educationText
}

// IsMarried reports whether the marital status is "yes".
func (p *Person) IsMarried() bool {
	return p.marital == MaritalMarried
}

// SetWeight replaces the weight in pounds.
func (p *Person) SetWeight(pounds float64) {
	p.weightPounds = pounds
}

// SetMaritalStatus replaces the marital status.
// On error the current value is kept.
func (p *Person) SetMaritalStatus(s string) error {
	marital, err := ParseMaritalStatus(s)
	if err != nil {
		return err
	}

	p.marital = marital
	p.maritalText = s

	return nil
}

// SetEducationLevel replaces the education level.
// On error the current value is kept.
func (p *Person) SetEducationLevel(s string) error {
	education, err := ParseEducationLevel(s)
	if err != nil {
		return err
	}

	p.education = education
	p.educationText = s

	return nil
}
