package httpclient

import (
	"time"

	"pomelox-server/internal/global/sentry/tracing"

	"github.com/go-resty/resty/v2"
)

var Client *resty.Client

func Init() {
	Client = resty.New().
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond)

	if tracing.IsEnabled() {
		tracing.SetupRestyTracing(Client)
	}
}
