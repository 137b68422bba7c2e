package domain

import "errors"

var ErrTokenMissing = errors.New("access token missing")
var ErrTokenInvalid = errors.New("invalid token")
var ErrTokenExpired = errors.New("token expired")
