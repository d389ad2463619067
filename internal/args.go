// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package internal

import (
	"flag"
)

// ParseArgs parses args with flags permitted before, between, or after
// positional arguments. The positional arguments are returned in order.
func ParseArgs(flags *flag.FlagSet, args []string) (positional []string, err error) {
	for {
		err = flags.Parse(args)
		if err != nil {
			return
		}

		args = flags.Args()
		if len(args) == 0 {
			return
		}

		positional = append(positional, args[0])
		args = args[1:]
	}
}
