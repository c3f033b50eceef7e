// Command jsictl is the operator-facing companion to the jsinterposer
// shared library: a reference supervisor stub for development and
// testing, a log tailer, and a hotplug diagnostic watcher. It is not
// part of the interposer's own data path.
package main

import (
	"log"

	"github.com/alecthomas/kong"
)

var CLI struct {
	Serve struct {
		Device  string `help:"Slot device path to serve, e.g. /dev/input/js0" required:"" name:"device"`
		Name    string `help:"Device name reported in the configuration blob" default:"Selkies Virtual Controller"`
		Vendor  uint16 `help:"USB vendor id reported in the configuration blob"`
		Product uint16 `help:"USB product id reported in the configuration blob"`
		Version uint16 `help:"Device version reported in the configuration blob" default:"1"`
		Axes    uint16 `help:"Number of axes to report" default:"2"`
		Buttons uint16 `help:"Number of buttons to report" default:"1"`
	} `cmd:"" help:"Serve one slot's configuration handshake for manual testing"`

	Tail struct {
		Follow bool `help:"Keep reading as new lines are appended" short:"f"`
	} `cmd:"" help:"Print the interposer's diagnostic log"`

	Watch struct {
		Dir string `help:"Directory to watch for hotplug diagnostics" default:"/dev/input"`
	} `cmd:"" help:"Watch a directory and print fsnotify create events"`
}

func main() {
	var ctx *kong.Context

	log.SetFlags(0)

	ctx = kong.Parse(&CLI)

	switch ctx.Command() {
	case "serve":
		runServe()
	case "tail":
		runTail()
	case "watch":
		runWatch()
	default:
		log.Fatal("unknown command")
	}
}
