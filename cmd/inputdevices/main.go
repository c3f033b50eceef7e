// Package main implements the inputdevices CLI, which lists the fixed
// set of synthetic joystick and evdev slots this library's shared
// library invents, along with each slot's current bind and
// configuration state.
//
// It prints the slot registry of its own process. Nothing in this command
// binds or configures a slot, so every one of the eight slots is listed
// with fd -1 and as unconfigured.
package main

import (
	"fmt"
	"strings"
)

func main() {
	var builder strings.Builder

	for _, dev := range devices {
		builder.WriteString(dev.Describe())
		builder.WriteByte('\n')
		builder.WriteString(strings.Repeat("-", 60))
		builder.WriteByte('\n')
	}

	fmt.Print(builder.String())
}
