//go:build ignore

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/gorilla/websocket"

	"github.com/mtreloar/souschef/internal/protocol"
)

// watch-session connects to a running souschef-server and prints every
// state broadcast as it arrives. Useful for debugging companion sync.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run tools/watch-session.go <ws-url>")
		fmt.Println("Example: go run tools/watch-session.go ws://192.168.1.20:8484/ws")
		os.Exit(1)
	}

	url := os.Args[1]
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		fmt.Printf("Error connecting: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	fmt.Printf("Connected to %s\n\n", url)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		os.Exit(0)
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			fmt.Printf("Connection closed: %v\n", err)
			return
		}
		printMessage(data)
	}
}

func printMessage(data []byte) {
	var env protocol.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		fmt.Printf("?? unparseable message: %s\n", data)
		return
	}

	switch env.Type {
	case protocol.TypeState:
		var msg protocol.StateMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			fmt.Printf("?? bad state message: %v\n", err)
			return
		}
		st := msg.State
		marker := " "
		switch {
		case st.IsFirst && st.IsLast:
			marker = "⇤⇥"
		case st.IsFirst:
			marker = "⇤"
		case st.IsLast:
			marker = "⇥"
		}
		fmt.Printf("[%s] step %d/%d %s %s\n",
			st.RecipeID, st.StepIndex+1, st.StepCount, marker, st.StepText)

	case protocol.TypeError:
		var msg protocol.ErrorMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			fmt.Printf("?? bad error message: %v\n", err)
			return
		}
		fmt.Printf("!! server error: %s\n", msg.Reason)

	default:
		fmt.Printf("?? unexpected message type %q: %s\n", env.Type, data)
	}
}
