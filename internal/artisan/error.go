package artisan

import "errors"

var ErrArtisanNotFound = errors.New("Artisan not found")
