// Package demo implements the demonstration run of person-demo.
//
// It builds the sample people (or a configured roster) and prints their
// descriptions under every unit and letter-case combination.
package demo
