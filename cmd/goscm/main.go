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
/*
goscm is a minimal Scheme-style interpreter: a read/expand/analyze/eval
core with a trampoline for proper tail calls.
*/
package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/launix-de/goscm/scm"
)

const defaultPrelude = "prelude/prelude.scm"

var preludePath string

func newInterpreter() *scm.Interpreter {
	ip := scm.NewInterpreter()
	if preludePath == "" {
		return ip
	}
	if err := ip.LoadPrelude(preludePath); err != nil {
		if preludePath == defaultPrelude && os.IsNotExist(err) {
			return ip // no prelude under the working directory: run with built-ins only
		}
		fmt.Fprintln(os.Stderr, "prelude:", err)
		os.Exit(1)
	}
	return ip
}

func newReplCmd() *cobra.Command {
	var historyFile, imagePath string
	var watchPrelude bool
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "start an interactive read-eval-print loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			ip := newInterpreter()
			if imagePath != "" {
				scm.RegisterExitDump(ip, imagePath)
			}
			if watchPrelude && preludePath != "" {
				stop := make(chan struct{})
				if err := scm.WatchPrelude(ip, preludePath, stop); err != nil {
					fmt.Fprintln(os.Stderr, "watch-prelude:", err)
				}
			}
			scm.Repl(ip, historyFile)
			return nil
		},
	}
	cmd.Flags().StringVar(&historyFile, "history", ".goscm-history.tmp", "readline history file")
	cmd.Flags().StringVar(&imagePath, "dump-on-exit", "", "dump a lz4-compressed image of global bindings here on exit, \"\" to disable")
	cmd.Flags().BoolVar(&watchPrelude, "watch-prelude", false, "reload the prelude file whenever it changes on disk")
	return cmd
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "evaluate every form in a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			ip := newInterpreter()
			result := ip.EvalAll(args[0], string(src))
			fmt.Println(scm.Display(result))
			return nil
		},
	}
	return cmd
}

func newServeCmd() *cobra.Command {
	var addr, imagePath string
	var watchPrelude bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "serve a websocket REPL endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			ip := newInterpreter()
			if imagePath != "" {
				scm.RegisterExitDump(ip, imagePath)
			}
			if watchPrelude && preludePath != "" {
				stop := make(chan struct{})
				if err := scm.WatchPrelude(ip, preludePath, stop); err != nil {
					fmt.Fprintln(os.Stderr, "watch-prelude:", err)
				}
			}
			mux := http.NewServeMux()
			mux.HandleFunc("/repl", scm.NetworkREPL(ip))
			server := &http.Server{Addr: addr, Handler: mux}

			done := make(chan struct{})
			go func() {
				sig := make(chan os.Signal, 1)
				signal.Notify(sig, os.Interrupt)
				<-sig
				server.Close()
				close(done)
			}()

			fmt.Println("listening on", addr)
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			<-done
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":6066", "listen address")
	cmd.Flags().StringVar(&imagePath, "dump-on-exit", "", "dump a lz4-compressed image of global bindings here on exit, \"\" to disable")
	cmd.Flags().BoolVar(&watchPrelude, "watch-prelude", false, "reload the prelude file whenever it changes on disk")
	return cmd
}

func main() {
	root := &cobra.Command{
		Use:   "goscm",
		Short: "a minimal Scheme-style interpreter",
	}
	root.PersistentFlags().StringVar(&preludePath, "prelude", defaultPrelude, "prelude file to load before running, \"\" to skip")
	root.AddCommand(newReplCmd(), newRunCmd(), newServeCmd())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
