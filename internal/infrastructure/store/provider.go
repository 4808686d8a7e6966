package store

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

const serviceRole = "service_role"

// Provider hands out store handles. The standard handle is built once at
// startup and shared; privileged handles carry the elevated credential and
// are built per call.
type Provider struct {
	standard   Store
	privileged func() Store
}

// NewProvider builds a provider. A nil privileged constructor means no
// elevated credential is configured and Privileged falls back to Standard.
func NewProvider(standard Store, privileged func() Store) *Provider {
	return &Provider{standard: standard, privileged: privileged}
}

func (p *Provider) Standard() Store {
	return p.standard
}

func (p *Provider) Privileged() Store {
	if p.privileged == nil {
		return p.standard
	}
	return p.privileged()
}

type RESTOptions struct {
	Timeout    time.Duration
	Instrument bool
}

// NewRESTProvider wires the standard and service keys to REST clients.
func NewRESTProvider(baseURL, key, serviceKey string, opts RESTOptions, log *logrus.Logger) *Provider {
	wrap := func(s Store) Store {
		if opts.Instrument {
			return Instrument(s)
		}
		return s
	}

	standard := wrap(NewRESTClient(baseURL, key, opts.Timeout))
	if serviceKey == "" {
		return NewProvider(standard, nil)
	}

	var once sync.Once
	return NewProvider(standard, func() Store {
		once.Do(func() { checkServiceRole(serviceKey, log) })
		return wrap(NewRESTClient(baseURL, serviceKey, opts.Timeout))
	})
}

// checkServiceRole warns when the elevated key does not look like a
// service role token. The signature is not verified; the store does that.
func checkServiceRole(key string, log *logrus.Logger) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(key, claims); err != nil {
		log.Warnf("Service key is not a JWT, row level security may still apply: %v", err)
		return
	}
	if role, _ := claims["role"].(string); role != serviceRole {
		log.Warnf("Service key has role %q, expected %q", role, serviceRole)
	}
}
