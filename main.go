// Copyright 2026 Wisdom Forms Ltd
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/wisdom-forms/forms-service/cmd"

func main() {
	cmd.Execute()
}
