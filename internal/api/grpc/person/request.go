package person

import (
	"errors"
	"fmt"
	"math"

	"google.golang.org/protobuf/types/known/structpb"
)

// Request field names.
const (
	fieldFirstName      = "first_name"
	fieldLastName       = "last_name"
	fieldBirthYear      = "birth_year"
	fieldMaritalStatus  = "marital_status"
	fieldWeightPounds   = "weight_pounds"
	fieldEducationLevel = "education_level"
	fieldUseKilograms   = "use_kilograms"
	fieldUseUppercase   = "use_uppercase"
)

var (
	// errRequestRequired is returned for a nil request.
	errRequestRequired = errors.New("request is required")
	// errUnknownField is returned for keys the service does not understand.
	errUnknownField = errors.New("unknown field")
	// errFieldType is returned when a field holds a value of the wrong kind.
	errFieldType = errors.New("unexpected field type")
	// errEmptyField is returned when an optional field is sent with an empty value.
	// Omit the field to select its default.
	errEmptyField = errors.New("empty field")
)

// DescribeRequest carries a person and the desired output format.
// Zero values of the optional fields select defaults on the server.
type DescribeRequest struct {
	FirstName string
	LastName  string
	// BirthYear of zero means the server's current year.
	BirthYear int
	// MaritalStatus of "" means "no".
	MaritalStatus string
	WeightPounds  float64
	// EducationLevel of "" means "high school".
	EducationLevel string
	UseKilograms   bool
	UseUppercase   bool
}

// ToStruct encodes the request as a protobuf Struct.
func (r *DescribeRequest) ToStruct() (*structpb.Struct, error) {
	if r == nil {
		return nil, errRequestRequired
	}

	fields := map[string]any{
		fieldFirstName:    r.FirstName,
		fieldLastName:     r.LastName,
		fieldWeightPounds: r.WeightPounds,
		fieldUseKilograms: r.UseKilograms,
		fieldUseUppercase: r.UseUppercase,
	}

	if r.BirthYear != 0 {
		fields[fieldBirthYear] = r.BirthYear
	}

	if r.MaritalStatus != "" {
		fields[fieldMaritalStatus] = r.MaritalStatus
	}

	if r.EducationLevel != "" {
		fields[fieldEducationLevel] = r.EducationLevel
	}

	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("encode describe request: %w", err)
	}

	return s, nil
}

// DescribeRequestFromStruct decodes a protobuf Struct into a request.
//
//nolint:cyclop // One branch per field keeps the mapping obvious.
func DescribeRequestFromStruct(s *structpb.Struct) (*DescribeRequest, error) {
	if s == nil {
		return nil, errRequestRequired
	}

	req := new(DescribeRequest)

	for key, value := range s.GetFields() {
		var err error

		switch key {
		case fieldFirstName:
			req.FirstName, err = stringValue(key, value)
		case fieldLastName:
			req.LastName, err = stringValue(key, value)
		case fieldMaritalStatus:
			req.MaritalStatus, err = nonEmptyStringValue(key, value)
		case fieldEducationLevel:
			req.EducationLevel, err = nonEmptyStringValue(key, value)
		case fieldWeightPounds:
			req.WeightPounds, err = numberValue(key, value)
		case fieldBirthYear:
			req.BirthYear, err = yearValue(key, value)
		case fieldUseKilograms:
			req.UseKilograms, err = boolValue(key, value)
		case fieldUseUppercase:
			req.UseUppercase, err = boolValue(key, value)
		default:
			err = fmt.Errorf("%w: %s", errUnknownField, key)
		}

		if err != nil {
			return nil, err
		}
	}

	return req, nil
}

// stringValue extracts a string field.
func stringValue(key string, v *structpb.Value) (string, error) {
	kind, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string", errFieldType, key)
	}

	return kind.StringValue, nil
}

// nonEmptyStringValue extracts a string field that must not be empty when present.
func nonEmptyStringValue(key string, v *structpb.Value) (string, error) {
	str, err := stringValue(key, v)
	if err != nil {
		return "", err
	}

	if str == "" {
		return "", fmt.Errorf("%w: %s", errEmptyField, key)
	}

	return str, nil
}

// numberValue extracts a numeric field.
func numberValue(key string, v *structpb.Value) (float64, error) {
	kind, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, fmt.Errorf("%w: %s must be a number", errFieldType, key)
	}

	return kind.NumberValue, nil
}

// yearValue extracts an integral numeric field.
func yearValue(key string, v *structpb.Value) (int, error) {
	n, err := numberValue(key, v)
	if err != nil {
		return 0, err
	}

	if n != math.Trunc(n) || n < math.MinInt32 || n > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s must be an integer", errFieldType, key)
	}

	return int(n), nil
}

// boolValue extracts a boolean field.
func boolValue(key string, v *structpb.Value) (bool, error) {
	kind, ok := v.GetKind().(*structpb.Value_BoolValue)
	if !ok {
		return false, fmt.Errorf("%w: %s must be a boolean", errFieldType, key)
	}

	return kind.BoolValue, nil
}
