package catalog

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

type builtin struct {
	name  string
	fn    any
	names []string
}

var builtins = []builtin{
	{name: "errors.New", fn: errors.New, names: []string{"text"}},
	{name: "fmt.Sprintf", fn: fmt.Sprintf, names: []string{"format", "a"}},
	{name: "math.Max", fn: math.Max, names: []string{"x", "y"}},
	{name: "os.Getenv", fn: os.Getenv, names: []string{"key"}},
	{name: "os.Getpid", fn: os.Getpid},
	{name: "strconv.FormatInt", fn: strconv.FormatInt, names: []string{"i", "base"}},
	{name: "strconv.ParseBool", fn: strconv.ParseBool, names: []string{"str"}},
	{name: "strings.Cut", fn: strings.Cut, names: []string{"s", "sep"}},
	{name: "strings.Repeat", fn: strings.Repeat, names: []string{"s", "count"}},
	{name: "time.Sleep", fn: time.Sleep, names: []string{"d"}},
}

// Default returns a registry pre-populated with a few standard library
// functions.
func Default() *Registry {
	reg := NewRegistry()
	for _, b := range builtins {
		if err := reg.Register(b.name, b.fn, b.names...); err != nil {
			panic(err)
		}
	}
	return reg
}
