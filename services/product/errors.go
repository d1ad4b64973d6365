package product

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrStoreFailure    = errors.New("product store failure")
)
