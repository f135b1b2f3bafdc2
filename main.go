// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"github.com/praxislabs/cli/cmd"
)

func main() {
	cmd.Execute()
}
