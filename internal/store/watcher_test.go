package store

import "github.com/fsnotify/fsnotify"

func fakeWriteEvent(path string) fsnotify.Event {
	return fsnotify.Event{Name: path, Op: fsnotify.Write}
}
