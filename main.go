package main

import (
	"fmt"
	"os"

	"budgetbook/cmd/root"
	"budgetbook/cmd/snapshot"
)

func init() {
	root.Init()
	snapshot.Init()
	root.Cmd.AddCommand(snapshot.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
