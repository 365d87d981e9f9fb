package marketplace

import "errors"

var (
	ErrUnapproved       = errors.New("caller or marketplace not approved for asset")
	ErrIncorrectAmount  = errors.New("payment does not match the listed price")
	ErrTerminalNotFound = errors.New("no terminal registered for treasury")
	ErrReentrant        = errors.New("reentrant call rejected")
)
