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
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func TestNetworkREPLEvaluatesOverWebsocket(t *testing.T) {
	ip := NewInterpreter()
	server := httptest.NewServer(http.HandlerFunc(NetworkREPL(ip)))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("(+ 1 2 3)")))
	_, reply, err := conn.ReadMessage()
	require.NoError(t, err)
	require.Equal(t, "6", string(reply))

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("(car '())")))
	_, reply, err = conn.ReadMessage()
	require.NoError(t, err)
	require.Contains(t, string(reply), "error:")
}

func TestEvalMessageSharesGlobalFrame(t *testing.T) {
	ip := NewInterpreter()
	first := evalMessage(ip, "(define shared 7)", "conn-a")
	require.Equal(t, "7", first)
	second := evalMessage(ip, "shared", "conn-b")
	require.Equal(t, "7", second)
}
