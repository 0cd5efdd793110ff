package main

import (
	"os"

	"github.com/caffeine-dev-rafly/cookie-tms/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
