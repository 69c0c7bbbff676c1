package main

import "wordnet/cmd/wordnet-cli/cmd"

func main() {
	cmd.Execute()
}
