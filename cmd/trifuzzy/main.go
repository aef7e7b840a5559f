// Command trifuzzy ranks, combines and averages triangular fuzzy numbers.
package main

import "github.com/mesh-intelligence/trifuzzy/internal/cli"

func main() {
	cli.Execute()
}
