// Command gmdoc converts GameMaker's GmlSpec.xml into a JSON or YAML
// description of every built-in function, variable and constant.
package main

import (
	"fmt"
	"os"

	"github.com/example/gmdoc/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
