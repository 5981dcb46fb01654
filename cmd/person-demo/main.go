package main

import "github.com/oshokin/person-profile/cmd/person-demo/cmd"

func main() {
	cmd.Execute()
}
