package main

import (
	"encoding/json"
	"log"
	"os"
	"path"

	"github.com/selkies-project/joystick-interposer/xdg"
)

// lastServed is the record of a serve invocation's parameters, persisted
// under the user's XDG config directory so a repeated `jsictl serve
// --device ...` for the same slot can be diffed against what was served
// last time.
type lastServed struct {
	Name    string `json:"name"`
	Vendor  uint16 `json:"vendor"`
	Product uint16 `json:"product"`
	Version uint16 `json:"version"`
	Axes    uint16 `json:"axes"`
	Buttons uint16 `json:"buttons"`
}

// recordServe persists the parameters this invocation served for device,
// under jsictl/<device leaf>.json in the XDG config directory. Failures
// are logged, never fatal: this is a debugging convenience, not part of
// the handshake itself.
func recordServe(device string, rec lastServed) {
	var (
		file *os.File
		err  error
	)

	file, err = xdg.ConfigFile(path.Join("jsictl", path.Base(device)+".json"))
	if err != nil {
		log.Printf("failed to open config record: %v", err)

		return
	}
	defer file.Close()

	err = file.Truncate(0)
	if err != nil {
		log.Printf("failed to truncate config record: %v", err)

		return
	}

	err = json.NewEncoder(file).Encode(rec)
	if err != nil {
		log.Printf("failed to write config record: %v", err)
	}
}
