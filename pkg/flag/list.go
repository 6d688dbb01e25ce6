package flag

import (
	"fmt"

	"github.com/spf13/pflag"
)

// FlagsList is an ordered group of Flag objects, registered and validated
// together.
type FlagsList []Flag

// AddTo satisfies the Flag interface requirement.
func (f FlagsList) AddTo(flagSet *pflag.FlagSet) {
	for _, x := range f {
		x.AddTo(flagSet)
	}
}

// AddUnhiddenTo satisfies the Flag interface requirement.
func (f FlagsList) AddUnhiddenTo(flagSet *pflag.FlagSet) {
	for _, x := range f {
		x.AddUnhiddenTo(flagSet)
	}
}

// Validate runs FlagValidate on every flag in the list, stopping and
// reporting the first one that fails.
func (f FlagsList) Validate() error {
	for _, x := range f {
		err := x.FlagValidate()
		if err != nil {
			fmt.Println(x.FlagKey())
			return err
		}
	}
	return nil
}
