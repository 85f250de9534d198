// Package discord provides the cooldown gate applied before command execution.
package discord

import (
	"sync"
	"time"
)

// CooldownManager tracks per-user, per-command cooldown expirations.
type CooldownManager struct {
	mu      sync.Mutex
	expires map[string]time.Time
	now     func() time.Time
}

// NewCooldownManager creates an empty CooldownManager
func NewCooldownManager() *CooldownManager {
	return &CooldownManager{
		expires: make(map[string]time.Time),
		now:     time.Now,
	}
}

func cooldownKey(userID, commandName string) string {
	return userID + ":" + commandName
}

// Check reports whether the user may run the command now. When allowed it
// arms the cooldown; when blocked it returns the remaining wait time.
func (cm *CooldownManager) Check(userID, commandName string, cooldown time.Duration) (time.Duration, bool) {
	if cooldown <= 0 {
		return 0, true
	}

	cm.mu.Lock()
	defer cm.mu.Unlock()

	key := cooldownKey(userID, commandName)
	now := cm.now()

	if expiry, ok := cm.expires[key]; ok && expiry.After(now) {
		return expiry.Sub(now), false
	}

	cm.expires[key] = now.Add(cooldown)
	cm.sweep(now)
	return 0, true
}

// Reset clears the cooldown of a user for a command
func (cm *CooldownManager) Reset(userID, commandName string) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	delete(cm.expires, cooldownKey(userID, commandName))
}

// Size returns the number of tracked cooldown entries
func (cm *CooldownManager) Size() int {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	return len(cm.expires)
}

// sweep drops expired entries. Called with the lock held.
func (cm *CooldownManager) sweep(now time.Time) {
	for key, expiry := range cm.expires {
		if !expiry.After(now) {
			delete(cm.expires, key)
		}
	}
}
