package discord

import (
	"testing"
	"time"
)

func TestCooldownCheck(t *testing.T) {
	cm := NewCooldownManager()
	now := time.Now()
	cm.now = func() time.Time { return now }

	if _, ok := cm.Check("u1", "mod.ban", 5*time.Second); !ok {
		t.Fatal("first use should be allowed")
	}

	remaining, ok := cm.Check("u1", "mod.ban", 5*time.Second)
	if ok {
		t.Fatal("second use within the cooldown should be blocked")
	}
	if remaining != 5*time.Second {
		t.Errorf("remaining = %v, want %v", remaining, 5*time.Second)
	}

	// Other users and other commands are independent
	if _, ok := cm.Check("u2", "mod.ban", 5*time.Second); !ok {
		t.Error("other user should not share the cooldown")
	}
	if _, ok := cm.Check("u1", "mod.kick", 5*time.Second); !ok {
		t.Error("other command should not share the cooldown")
	}

	// After expiry the command is allowed again
	now = now.Add(6 * time.Second)
	if _, ok := cm.Check("u1", "mod.ban", 5*time.Second); !ok {
		t.Error("use after expiry should be allowed")
	}
}

func TestCooldownZeroDuration(t *testing.T) {
	cm := NewCooldownManager()

	for i := 0; i < 3; i++ {
		if _, ok := cm.Check("u1", "ping", 0); !ok {
			t.Fatal("commands without cooldown must always be allowed")
		}
	}
	if cm.Size() != 0 {
		t.Errorf("no entries should be tracked for zero cooldowns, got %d", cm.Size())
	}
}

func TestCooldownReset(t *testing.T) {
	cm := NewCooldownManager()

	cm.Check("u1", "mod.ban", time.Minute)
	cm.Reset("u1", "mod.ban")

	if _, ok := cm.Check("u1", "mod.ban", time.Minute); !ok {
		t.Error("use after reset should be allowed")
	}
}

func TestCooldownSweep(t *testing.T) {
	cm := NewCooldownManager()
	now := time.Now()
	cm.now = func() time.Time { return now }

	cm.Check("u1", "mod.ban", time.Second)
	cm.Check("u2", "mod.kick", time.Hour)

	now = now.Add(2 * time.Second)
	cm.Check("u3", "mod.warn", time.Minute)

	// u1's expired entry is swept, u2 and u3 remain
	if cm.Size() != 2 {
		t.Errorf("tracked entries = %d, want 2", cm.Size())
	}
}
