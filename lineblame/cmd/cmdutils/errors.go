package cmdutils

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// ExitWithErr prints err in red and exits with code 1.
func ExitWithErr(err error) {
	fmt.Fprintln(color.Error, color.RedString("failed with error: %v", err.Error()))
	os.Exit(1)
}
