// Package main provides the almanac binary: an interactive catalog of villagers'
// birthdays, favourite gifts and marriage eligibility.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
