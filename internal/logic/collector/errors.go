package collector

import "errors"

var (
	ErrSourceUnreachable  = errors.New("source unreachable")
	ErrIdentityUnresolved = errors.New("identity unresolved")
	ErrSinkDeliveryFailed = errors.New("sink delivery failed")
)
