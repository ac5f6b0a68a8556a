package service

import "errors"

var (
	ErrMissingFields = errors.New("missing required fields")
	ErrSignUpFailed  = errors.New("sign-up failed")
	ErrProfileFailed = errors.New("vendor profile insert failed")
)
