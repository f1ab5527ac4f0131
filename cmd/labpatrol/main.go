// Command labpatrol answers the lab patrol puzzle for a map file.
//
//	labpatrol solve input.txt      # visited cells, loop-inducing obstructions
//	labpatrol walk input.txt       # draw the guard's trail
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
