// Package flag provides small, datatype-specific wrappers around pflag so
// that command definitions can declare their flags as typed values with a
// uniform Add/Validate contract instead of repeating pflag boilerplate.
package flag

import "github.com/spf13/pflag"

// Flag is a datatype-agnostic interface for flag objects.
type Flag interface {
	FlagKey() string
	FlagShort() string
	FlagUsage() string
	FlagValidate() error
	AddTo(flagSet *pflag.FlagSet)
	AddUnhiddenTo(flagSet *pflag.FlagSet)
}

// FlagPart holds the fields common to every flag type.
type FlagPart struct {
	Key    string
	short  string
	usage  string
	hidden bool
}

// NewFlagPart returns a new FlagPart.
func NewFlagPart(key, usage string, hidden bool) FlagPart {
	return FlagPart{Key: key, usage: usage, hidden: hidden}
}

// WithShort sets the flag's single-letter shorthand and returns the part for
// chaining at construction time.
func (p FlagPart) WithShort(short string) FlagPart {
	p.short = short
	return p
}

// FlagKey returns the flag's long name.
func (p FlagPart) FlagKey() string { return p.Key }

// FlagShort returns the flag's shorthand, or "" if it has none.
func (p FlagPart) FlagShort() string { return p.short }

// FlagUsage returns the flag's help text.
func (p FlagPart) FlagUsage() string { return p.usage }
