package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/maastricht-university/zerospeech-convolution/cli"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if err := cli.Execute(log, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
