package main

import (
	"os"

	"algodemo/src/cmd"
	"algodemo/src/utils"
)

func main() {
	if err := cmd.Main(os.Args); err != nil {
		utils.GetLogger("algodemo").Fatal(err)
	}
}
