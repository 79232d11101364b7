package models

import "github.com/go-playground/validator/v10"

// Shared validator instance; validator caches struct metadata, so one
// instance serves the whole package.
var validate = validator.New()
