package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/selkies-project/joystick-interposer/internal/diaglog"
)

// runTail prints the interposer's diagnostic log, optionally following
// it as new lines are appended.
func runTail() {
	var (
		file   *os.File
		reader *bufio.Reader
		err    error
	)

	file, err = os.Open(diaglog.Path)
	if err != nil {
		log.Fatalf("failed to open %s: %v", diaglog.Path, err)
	}
	defer file.Close()

	reader = bufio.NewReader(file)

	for {
		var line string

		line, err = reader.ReadString('\n')
		if err == nil {
			fmt.Print(line)

			continue
		}

		if err != io.EOF {
			log.Fatalf("failed to read %s: %v", diaglog.Path, err)
		}

		if line != "" {
			fmt.Print(line)
		}

		if !CLI.Tail.Follow {
			return
		}

		time.Sleep(200 * time.Millisecond)
	}
}
