package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	Output io.Writer = color.Output
	Input  io.Reader = os.Stdin
)

// SetColor turns terminal colors on or off for everything printed afterwards.
func SetColor(enabled bool) {
	color.NoColor = !enabled
}

func Printfln(format string, args ...interface{}) {
	Println(fmt.Sprintf(format, args...))
}

func Println(args ...interface{}) {
	_, _ = fmt.Fprintln(Output, args...)
}
