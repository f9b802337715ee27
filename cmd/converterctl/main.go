// Command converterctl converts a text value through the convert-lab
// registry, with the builtin text converters registered.
//
//	converterctl -to int64 42
//	converterctl -from duration -to string 90s
//	converterctl -to time -layout 2006-01-02 2024-03-09
//	converterctl -locale de -to bool maybe
//	converterctl -list
//
// Logging, tracing and metrics are configured from the environment, see
// the config package.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
)

func main() {
	opts, err := parseOptions(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	os.Exit(run(context.Background(), opts, os.Stdout, os.Stderr))
}
