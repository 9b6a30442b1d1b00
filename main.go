package main

import "dorkiq/internal/app/runner"

func main() {
	runner.Run()
}
