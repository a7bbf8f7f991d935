package binder

import "errors"

var (
	ErrInvalidQuery  = errors.New("invalid query parameter")
	ErrInvalidPath   = errors.New("invalid path parameter")
	ErrInvalidHeader = errors.New("invalid header")
	ErrInvalidTarget = errors.New("binding target must be a non-nil pointer to struct")

	// ErrBinderNotApplicable tells the caller to skip this binder for the
	// current request.
	ErrBinderNotApplicable = errors.New("binder not applicable")
)
