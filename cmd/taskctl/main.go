package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"task-manager/backend/logging"
)

func main() {
	logging.Logger.SetLevel(logrus.WarnLevel)

	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
