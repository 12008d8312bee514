// Package ciutil detects continuous integration environments so that test
// helpers can fail instead of skip when required infrastructure is missing.
package ciutil
