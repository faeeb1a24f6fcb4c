// Package flagutil converts cobra flags into the optional pointer
// parameters of the activedirectory client: a flag the user did not touch
// stays absent (nil), a flag set to a zero value is transmitted as zero.
package flagutil

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/pflag"
)

func StringIfSet(flags *pflag.FlagSet, name string) (*string, error) {
	if !flags.Changed(name) {
		return nil, nil
	}
	v, err := flags.GetString(name)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func BoolIfSet(flags *pflag.FlagSet, name string) (*bool, error) {
	if !flags.Changed(name) {
		return nil, nil
	}
	v, err := flags.GetBool(name)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func StringSliceIfSet(flags *pflag.FlagSet, name string) ([]string, error) {
	if !flags.Changed(name) {
		return nil, nil
	}
	return flags.GetStringSlice(name)
}

// TTLSecondsIfSet reads a TTL flag given either as plain seconds ("3600")
// or as a Go duration ("1h").
func TTLSecondsIfSet(flags *pflag.FlagSet, name string) (*int, error) {
	if !flags.Changed(name) {
		return nil, nil
	}
	v, err := flags.GetString(name)
	if err != nil {
		return nil, err
	}
	if seconds, err := strconv.Atoi(v); err == nil {
		return &seconds, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return nil, fmt.Errorf("flag --%s: %q is neither seconds nor a duration", name, v)
	}
	seconds := int(d.Seconds())
	return &seconds, nil
}
