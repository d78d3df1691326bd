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
	"io"
	"os"
	"runtime/debug"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"
)

func colorPrompt(plain, colored string) string {
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return colored
	}
	return plain
}

var (
	newPrompt    = colorPrompt("> ", "\033[32m>\033[0m ")
	contPrompt   = colorPrompt(". ", "\033[32m.\033[0m ")
	resultPrompt = colorPrompt("= ", "\033[31m=\033[0m ")
)

// Repl runs an interactive read-eval-print loop against ip until EOF or
// interrupt. Each top-level form is wrapped in its own recover so one bad
// form never takes down the session; an incomplete form (unbalanced
// parens) instead continues accumulating lines under a continuation
// prompt.
func Repl(ip *Interpreter, historyFile string) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            newPrompt,
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()
	l.CaptureExitSignal()

	pending := ""
	for {
		line, err := l.Readline()
		line = pending + line
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			pending = ""
			l.SetPrompt(newPrompt)
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			panic(err)
		}
		if line == "" {
			continue
		}

		func() {
			defer func() {
				if r := recover(); r != nil {
					if re, ok := r.(*ReadError); ok && re.Incomplete {
						pending = line + "\n"
						l.SetPrompt(contPrompt)
						return
					}
					switch r.(type) {
					case *EvalError, *UnboundError, *ReadError:
						fmt.Println("error:", r)
					default:
						fmt.Println("panic:", r)
						fmt.Println(string(debug.Stack()))
					}
					pending = ""
					l.SetPrompt(newPrompt)
				}
			}()
			forms := ReadAll("user input", line)
			var result Scmer = Nil
			for _, form := range forms {
				result = ip.EvalTopLevel(form)
			}
			fmt.Print(resultPrompt)
			fmt.Println(Display(result))
			pending = ""
			l.SetPrompt(newPrompt)
		}()
	}
}
