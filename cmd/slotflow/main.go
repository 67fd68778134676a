package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/slotflow/cmd/slotflow/app"
)

func main() {
	if err := app.NewSlotflowCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
