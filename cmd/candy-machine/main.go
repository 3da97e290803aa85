// candy-machine derives the accounts used to mint from a candy machine and
// reports the resolved mint configuration.
package main

import "github.com/code-payments/candy-machine/cmd/candy-machine/cmd"

func main() {
	cmd.Execute()
}
