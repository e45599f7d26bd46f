package main

import (
	"sync"
)

func main() {
	// copylock: copying a mutex
	var mu sync.Mutex
	muCopy := mu // want "assignment copies lock value to muCopy: sync.Mutex"
	muCopy.Lock()
}
