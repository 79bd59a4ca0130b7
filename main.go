// Copyright © 2026 The clang-complete authors

package main

import "github.com/luthersystems/clang-complete/cmd"

func main() {
	cmd.Execute()
}
