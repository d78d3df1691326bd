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
	"net/http"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/jtolds/gls"
)

var connMgr = gls.NewContextManager()

const glsConnKey = "conn-id"

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// connID returns the uuid of the connection running on the calling
// goroutine, or "" outside of one -- useful for tagging log lines from
// deep inside evaluation without threading an id through every call.
func connID() string {
	if v, ok := connMgr.GetValue(glsConnKey); ok {
		return v.(string)
	}
	return ""
}

// NetworkREPL upgrades an HTTP request to a websocket and evaluates the
// top-level forms of each text message against ip's shared global frame: every
// connection reads and defines into the same environment, made safe by
// the global frame's lock-free map (see env.go).
func NetworkREPL(ip *Interpreter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		id := uuid.NewString()
		gls.Go(func() {
			connMgr.SetValues(gls.Values{glsConnKey: id}, func() {
				serveConn(ip, ws, id)
			})
		})
	}
}

func serveConn(ip *Interpreter, ws *websocket.Conn, id string) {
	defer ws.Close()
	for {
		messageType, msg, err := ws.ReadMessage()
		if err != nil {
			return // closed connection or transport error: end the session
		}
		if messageType != websocket.TextMessage {
			continue
		}
		reply := evalMessage(ip, string(msg), id)
		if err := ws.WriteMessage(websocket.TextMessage, []byte(reply)); err != nil {
			return
		}
	}
}

// evalMessage runs every top-level form in msg and renders the last
// result, recovering any panic into a one-line error reply so a bad form
// from one connection never takes the process (or other connections) down.
func evalMessage(ip *Interpreter, msg, id string) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			switch r.(type) {
			case *EvalError, *UnboundError, *ReadError:
				reply = "error: " + fmt.Sprint(r)
			default:
				reply = "panic: " + fmt.Sprint(r)
				fmt.Println("panic on connection", id, ":", r, string(debug.Stack()))
			}
		}
	}()
	forms := ReadAll("ws:"+id, msg)
	result := Nil
	for _, form := range forms {
		result = ip.EvalTopLevel(form)
	}
	return Display(result)
}
