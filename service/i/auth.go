package i

import (
	dmn "github.com/beka-birhanu/maze-explorer-api/domain"
)

// Authenticator manages operator accounts.
type Authenticator interface {
	Register(username, password string) error
	SignIn(username, password string) (*dmn.User, string, error)
}
