package product

import "errors"

var ErrProductNotFound = errors.New("Product not found")
