// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command eitherstress races either endpoint pairs across goroutines and
// reports how every pair resolved.
package main

import (
	"fmt"
	"os"

	"code.hybscloud.com/either/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "eitherstress:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
