// Package person contains the core domain type of the project.
//
// It defines Person (identity and demographic attributes), the closed
// MaritalStatus and EducationLevel enumerations with case-insensitive parsers,
// and the formatting rules used to render a one-line description.
package person
