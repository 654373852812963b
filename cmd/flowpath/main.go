// Command flowpath traces a single D8 flow path across a small raster and
// prints it. See internal/cli for the command reference.
package main

import "github.com/katalvlaran/flowpath/internal/cli"

func main() {
	cli.Execute()
}
