package services

import "errors"

// ErrRollNumberExists is returned when creating a student whose roll number is taken.
var ErrRollNumberExists = errors.New("roll number already exists")
