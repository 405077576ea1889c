// SPDX-License-Identifier: MPL-2.0

// pbinv collects PBIP export artifacts into a single inventory tree.
package main

import (
	cmd "pbinv-cli/cmd/pbinv"
)

func main() {
	cmd.Execute()
}
