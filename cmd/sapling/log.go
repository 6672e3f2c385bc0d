package main

import (
	"fmt"
	"os"
)

func (c *rootCmdConfig) Logf(format string, a ...interface{}) {
	if !c.verbose {
		return
	}
	fmt.Fprintf(os.Stderr, format, a...)
	fmt.Fprintln(os.Stderr, "")
}
