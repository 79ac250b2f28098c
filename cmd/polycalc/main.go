package main

import "github.com/surveyworks/polycalc/cmd/polycalc/cmd"

func main() {
	cmd.Execute()
}
