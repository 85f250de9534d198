package moderation

import "sync"

// Service bundles the resolver and the ledger behind a single handle.
type Service struct {
	*Resolver
	*Ledger
}

var (
	instance *Service
	once     sync.Once
)

// Init initializes the global moderation service. Subsequent calls
// return the existing instance.
func Init(policies PolicyStore, cases CaseStore, warnings WarningStore, msg Messenger) *Service {
	once.Do(func() {
		instance = &Service{
			Resolver: NewResolver(policies),
			Ledger:   NewLedger(policies, cases, warnings, msg),
		}
	})
	return instance
}

// Get returns the global moderation service, or nil before Init.
func Get() *Service {
	return instance
}
