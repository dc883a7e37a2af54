//go:build ignore

// Manual probe for the clipboard backend on the current machine:
//
//	go run cmd/cliptest/main.go
package main

import (
	"fmt"

	"github.com/zhubert/msgcodec/internal/clipboard"
)

func main() {
	if err := clipboard.Init(); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	const probe = "msgcodec clipboard probe"
	fmt.Println("Testing clipboard write...")
	if err := clipboard.WriteText(probe); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println("Testing clipboard read...")
	text, err := clipboard.ReadText()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if text != probe {
		fmt.Printf("Mismatch: got %q\n", text)
		return
	}
	fmt.Println("Round trip ok")
}
