package main

import (
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Flag values that remember whether they were given, so that an explicit zero
// on the command line still wins over the config file.
type optionalInt struct {
	value int
	set   bool
}

func (o *optionalInt) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return errors.Wrapf(err, "expected an integer, got %q", s)
	}
	o.value, o.set = v, true
	return nil
}

func (o *optionalInt) String() string {
	return strconv.Itoa(o.value)
}

type optionalFloat struct {
	value float64
	set   bool
}

func (o *optionalFloat) Set(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.Wrapf(err, "expected a number, got %q", s)
	}
	o.value, o.set = v, true
	return nil
}

func (o *optionalFloat) String() string {
	return strconv.FormatFloat(o.value, 'g', -1, 64)
}

func optionalIntFlag(f *kingpin.FlagClause) *optionalInt {
	v := &optionalInt{}
	f.SetValue(v)
	return v
}

func optionalFloatFlag(f *kingpin.FlagClause) *optionalFloat {
	v := &optionalFloat{}
	f.SetValue(v)
	return v
}
