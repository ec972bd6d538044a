package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyCityName    = errors.New("city name is required")
	ErrInvalidCityIP    = errors.New("invalid city server address")
	ErrInvalidCityPort  = errors.New("invalid city server port")
	ErrInvalidLoginPort = errors.New("invalid login port")
	ErrPortCollision    = errors.New("client port must differ from login port")
)
