package main

import (
	"os"

	"github.com/bfkit/bfrt/hello"
)

func main() {
	os.Exit(hello.Run(os.Stdout, hello.HeapAllocator{}))
}
