// cbf-translator translates the string table of a CBF dump.
package main

import "cbf-translator/internal/cli"

func main() {
	cli.Execute()
}
