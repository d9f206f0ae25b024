package main

import "github.com/tidepool-org/medical-data/cmd/medicaldata/command"

func main() {
	command.Execute()
}
