/*
Copyright (C) 2026  The goscm Authors

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package scm

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
)

// LoadPrelude evaluates path's contents as a top-level prelude: library
// definitions every session should start with.
func (ip *Interpreter) LoadPrelude(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	ip.EvalAll(path, string(src))
	return nil
}

// WatchPrelude re-loads path into ip every time it changes on disk, so a
// long-running REPL or server session picks up library edits without a
// restart. It runs until stop is closed.
func WatchPrelude(ip *Interpreter, path string, stop <-chan struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return err
	}
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-stop:
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
					if err := ip.LoadPrelude(path); err != nil {
						fmt.Println("prelude reload failed:", err)
					} else {
						fmt.Println("prelude reloaded:", path)
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fmt.Println("prelude watch error:", err)
			}
		}
	}()
	return nil
}
