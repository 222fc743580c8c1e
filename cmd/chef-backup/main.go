package main

import (
	"os"

	"chef-backup/src/cli"
)

func main() {
	os.Exit(cli.Execute())
}
