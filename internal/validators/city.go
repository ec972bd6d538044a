package validators

import (
	"context"
	"net"
	"strings"

	"github.com/MKhiriev/dollhouse-client/models"
)

// Field name constants used to restrict city listing validation.
const (
	FieldName      = "name"
	FieldIP        = "ip"
	FieldPort      = "port"
	FieldLoginPort = "login_port"
)

const maxPort = 65535

// CityValidator implements [Validator] for [models.CityListing] entries
// received from the directory.
type CityValidator struct {
}

func NewCityValidator() Validator {
	return &CityValidator{}
}

// Validate accepts models.CityListing or *models.CityListing. With no fields
// every rule is checked.
func (v *CityValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CityListing:
		return v.validateCityListing(ctx, value, fields...)
	case *models.CityListing:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCityListing(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CityValidator) validateCityListing(_ context.Context, city models.CityListing, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldIP, FieldPort, FieldLoginPort}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(city.Name) == "" {
				return ErrEmptyCityName
			}
		case FieldIP:
			if !validHost(city.IP) {
				return ErrInvalidCityIP
			}
		case FieldPort:
			if city.Port <= 0 || city.Port > maxPort {
				return ErrInvalidCityPort
			}
		case FieldLoginPort:
			// zero means the directory did not disclose it
			if city.LoginPort == 0 {
				continue
			}
			if city.LoginPort < 0 || city.LoginPort > maxPort {
				return ErrInvalidLoginPort
			}
			if city.LoginPort == city.Port {
				return ErrPortCollision
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validHost accepts an IP literal or a DNS host name.
func validHost(host string) bool {
	if net.ParseIP(host) != nil {
		return true
	}
	if host == "" || len(host) > 253 || strings.HasSuffix(host, ".") {
		return false
	}

	for _, label := range strings.Split(host, ".") {
		if label == "" || len(label) > 63 || label[0] == '-' || label[len(label)-1] == '-' {
			return false
		}
		for _, r := range label {
			if !(r == '-' || r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
				return false
			}
		}
	}

	return true
}
