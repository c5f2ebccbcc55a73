// Command openccgo converts Chinese text between script variants and
// performs word segmentation from the command line.
package main

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"
)

type options struct {
	Convert convertCommand `command:"convert" description:"Convert text between script variants"`
	Segment segmentCommand `command:"segment" description:"Segment text into words"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Name = "openccgo"

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "openccgo: %v\n", err)
		os.Exit(1)
	}
}
