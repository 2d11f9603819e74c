package middleware

import (
	"timeplanner/internal/user"
	pkgLog "timeplanner/pkg/log"
)

type Middleware struct {
	l       pkgLog.Logger
	userUC  user.UseCase
	limiter *rateLimiter
}

func New(l pkgLog.Logger, userUC user.UseCase, requestsPerMin int) Middleware {
	return Middleware{
		l:       l,
		userUC:  userUC,
		limiter: newRateLimiter(requestsPerMin),
	}
}
