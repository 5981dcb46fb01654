package main

import "github.com/oshokin/person-profile/cmd/person-server/cmd"

func main() {
	cmd.Execute()
}
