package config

import (
	"fmt"
	"sort"
)

// Validation messages surfaced to the caller.
const (
	ErrNoFirebaseCredentials  = "FIREBASE_CREDENTIALS_PATH not set"
	ErrNoEnabledExchanges     = "no exchanges enabled, set at least one exchange to enabled=true"
	ErrMissingProdCredentials = "exchange %s is enabled for production but missing API key or secret"
)

// Validate checks the critical startup rules and returns every violation
// rather than stopping at the first. The list is advisory: Load succeeds even
// when rules are broken, and the caller decides whether a non-empty list
// aborts startup.
func (s *Settings) Validate() []string {
	var problems []string

	if s.FirebaseCredentials == "" {
		problems = append(problems, ErrNoFirebaseCredentials)
	}

	names := make([]string, 0, len(s.Exchanges))
	for name := range s.Exchanges {
		names = append(names, name)
	}
	sort.Strings(names)

	var enabled []ExchangeConfig
	for _, name := range names {
		if e := s.Exchanges[name]; e.Enabled {
			enabled = append(enabled, e)
		}
	}

	if len(enabled) == 0 {
		problems = append(problems, ErrNoEnabledExchanges)
	}

	for _, e := range enabled {
		if !e.Sandbox && (e.APIKey == "" || e.APISecret == "") {
			problems = append(problems, fmt.Sprintf(ErrMissingProdCredentials, e.Name))
		}
	}

	return problems
}
