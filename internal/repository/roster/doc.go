// Package roster implements persistence for lists of people.
//
// The FileRepository reads and writes a YAML roster on disk and exposes a
// Repository interface that the demo service depends on.
package roster
