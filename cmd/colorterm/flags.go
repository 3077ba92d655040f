package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
)

var _ pflag.Value = (*enumFlag)(nil)

// enumFlag is a pflag.Value implementation that accepts one of a fixed set of values,
// case-insensitively.
type enumFlag struct {
	value   string
	allowed []string
}

// newEnumFlag creates a new enumFlag with the given default value.
func newEnumFlag(defaultValue string, allowed []string) *enumFlag {
	return &enumFlag{value: defaultValue, allowed: allowed}
}

// Set stores the lowercased value if it is one of the allowed values.
func (f *enumFlag) Set(s string) error {
	v := strings.ToLower(strings.TrimSpace(s))
	if !slices.Contains(f.allowed, v) {
		return fmt.Errorf("must be one of %s", strings.Join(f.allowed, ", "))
	}
	f.value = v
	return nil
}

// String returns the string representation of the flag value.
func (f *enumFlag) String() string {
	return f.value
}

// Type lists the allowed values for the usage message.
func (f *enumFlag) Type() string {
	return strings.Join(f.allowed, "|")
}

// Value returns the current value of the flag.
func (f *enumFlag) Value() string {
	return f.value
}
