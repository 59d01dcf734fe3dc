// Package main is the entry point for the tvjuke application.
package main

import (
	"github.com/samber/lo"
	"github.com/tvjuke-cli/tvjuke/cmd"
	"github.com/tvjuke-cli/tvjuke/config"
	"github.com/tvjuke-cli/tvjuke/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
