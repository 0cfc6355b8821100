package main

import (
	"fmt"
	"os"

	"github.com/temirov/assetcheck/cmd/cli"
)

const (
	fatalMessageTemplateConstant = "assetcheck: %v\n"
	failureExitCodeConstant      = 1
)

// main runs the audit CLI. Errors are fatal and leave standard output untouched.
func main() {
	executionError := cli.Execute()
	if executionError == nil {
		return
	}
	fmt.Fprintf(os.Stderr, fatalMessageTemplateConstant, executionError)
	os.Exit(failureExitCodeConstant)
}
