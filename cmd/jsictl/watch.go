package main

import (
	"log"

	"github.com/fsnotify/fsnotify"
)

// runWatch reports create events under a directory, the same signal
// application hotplug logic keys off of; useful for confirming the
// interposer's synthetic inotify burst actually reaches a real watcher.
func runWatch() {
	var (
		watcher *fsnotify.Watcher
		err     error
	)

	watcher, err = fsnotify.NewWatcher()
	if err != nil {
		log.Fatalf("failed to create watcher: %v", err)
	}
	defer watcher.Close()

	err = watcher.Add(CLI.Watch.Dir)
	if err != nil {
		log.Fatalf("failed to watch %s: %v", CLI.Watch.Dir, err)
	}

	log.Printf("watching %s for changes...", CLI.Watch.Dir)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			if event.Op&fsnotify.Create == fsnotify.Create {
				log.Printf("created: %s", event.Name)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}

			log.Printf("watch error: %v", err)
		}
	}
}
