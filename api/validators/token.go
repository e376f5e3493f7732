package validators

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/c-e-daly/prophet-sub001/pkg/config"
)

var attributionSigningMethod = jwt.SigningMethodHS256

// AttributionTokenValidator checks the signed token the storefront script
// attaches to a submission to vouch for the cart's origin.
type AttributionTokenValidator interface {
	Validate(token string) bool
}

type jwtAttributionValidator struct {
	cfg config.TokenConfig
}

// NewAttributionTokenValidator builds a validator that verifies signature,
// expiry, and issuer. Returns an error when the signing secret is missing so
// a misconfigured deployment fails at startup rather than skipping checks.
func NewAttributionTokenValidator(cfg config.TokenConfig) (AttributionTokenValidator, error) {
	if strings.TrimSpace(cfg.Secret) == "" {
		return nil, fmt.Errorf("token secret required for attribution validator")
	}
	if strings.TrimSpace(cfg.Issuer) == "" {
		return nil, fmt.Errorf("token issuer required for attribution validator")
	}
	return &jwtAttributionValidator{cfg: cfg}, nil
}

func (v *jwtAttributionValidator) Validate(token string) bool {
	if token == "" {
		return false
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(
		token,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if token.Method != attributionSigningMethod {
				return nil, fmt.Errorf("unexpected signing method %s", token.Header["alg"])
			}
			return []byte(v.cfg.Secret), nil
		},
		jwt.WithValidMethods([]string{attributionSigningMethod.Alg()}),
		jwt.WithIssuer(v.cfg.Issuer),
	)
	return err == nil
}
