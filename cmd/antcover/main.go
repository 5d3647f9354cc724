// SPDX-License-Identifier: MIT

// Command antcover solves unicost set-covering instances with an Ant Colony.
//
//	antcover solve -f instance.txt --out solutions/
//	antcover solve -d instances/ --config antcover.yaml --metrics-addr :9090
//	antcover validate -i instance.txt -s solutions/instance.sol
//	antcover preprocess instance.txt
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "antcover")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		log.WithError(err).Error("antcover failed")
		os.Exit(1)
	}
}
