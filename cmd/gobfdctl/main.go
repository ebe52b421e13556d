// gobfdctl is the command-line client for the GoBFD daemon, talking to it
// over ConnectRPC.
package main

import "github.com/dantte-lp/gobfd/cmd/gobfdctl/commands"

func main() {
	commands.Execute()
}
