package weather

import "errors"

// ErrUnknownPreset indicates a preset id is not in the catalog.
var ErrUnknownPreset = errors.New("unknown weather preset")

// ErrInvalidPreset indicates a preset definition failed validation.
var ErrInvalidPreset = errors.New("invalid weather preset")

// ErrInvalidZone indicates a zone configuration failed validation.
var ErrInvalidZone = errors.New("invalid climate zone")
