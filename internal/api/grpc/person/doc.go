// Package person implements the gRPC transport for the person service.
//
// The service descriptor is declared by hand: requests travel as
// google.protobuf.Struct and descriptions come back as
// google.protobuf.StringValue, so no generated code is needed.
package person
