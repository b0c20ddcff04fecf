// Package main is the entry point for stackq.
package main

import (
	"github.com/samber/lo"
	"github.com/stackq/stackq/cmd"
	"github.com/stackq/stackq/config"
	"github.com/stackq/stackq/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
