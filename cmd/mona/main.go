// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package main

import (
	"fmt"
	"os"
)

const logo = `.------------------------.
|                        |
|  .--.   .--.   .--.    |
|  |  +-->|  +-->|  |    |
|  '--'   '--'   '--'    |
|  rules  match   svg    |
|                        |
'------------------------'
`

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "mona: %s\n", err)
		os.Exit(1)
	}
}
