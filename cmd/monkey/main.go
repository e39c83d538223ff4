// Command monkey is the CLI entry point for the Monkey language pipeline.
package main

import "github.com/cwbudde/go-monkey/cmd/monkey/cmd"

func main() {
	cmd.Execute()
}
