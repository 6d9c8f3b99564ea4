// scramblesearch - enumerates perfectly scrambled colorings of a 3x3x3 cube.
package main

import (
	"github.com/seamusw/scramblesearch/internal/cli"
)

func main() {
	cli.Execute()
}
