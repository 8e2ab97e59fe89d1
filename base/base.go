package base

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

const CRMAPIPrefix = "/api/crm/v1"

// Go datetime parser does not like slightly incorrect RFC 3339 which we are using (missing Z )
const Rfc3339NoTz = "2006-01-02T15:04:05-07:00"

var (
	Context       context.Context
	CancelContext context.CancelFunc
)

func init() {
	Context, CancelContext = context.WithCancel(context.Background())
}

func HandleSignals() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		<-c
		CancelContext()
	}()
}
