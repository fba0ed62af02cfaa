package main

import (
	"context"
	"fmt"
	"os"

	"github.com/smartcontractkit/movetx/cmd/movetx"
)

func main() {
	rootCmd := movetx.BuildMoveTxCmd()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
