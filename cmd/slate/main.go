// Command slate scans delimiter-based template files and prints their token
// stream, document structure, or collected stylesheet links.
package main

import "github.com/pacer/slate/internal/cli"

func main() {
	cli.Execute()
}
