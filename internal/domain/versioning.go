// internal/domain/versioning.go
package domain

import "time"

// Window is the validity window of a versioned record. A nil Expiry is open-ended.
type Window struct {
	Active    bool
	Effective time.Time
	Expiry    *time.Time
}

// InForce reports whether the window covers t.
func (w Window) InForce(t time.Time) bool {
	if !w.Active || w.Effective.After(t) {
		return false
	}
	return w.Expiry == nil || w.Expiry.After(t)
}

// Versioned is implemented by append-only history records.
type Versioned interface {
	Window() Window
}

// versionedPtr constrains P to be *T and Versioned.
type versionedPtr[T any] interface {
	*T
	Versioned
}

// EffectiveAt picks the record in force at t from a history. When several are in force the one
// with the latest effective time wins; on a tie the later record in the slice wins.
func EffectiveAt[T any, P versionedPtr[T]](history []T, t time.Time) (T, bool) {
	var (
		best  T
		found bool
		since time.Time
	)
	for i := range history {
		w := P(&history[i]).Window()
		if !w.InForce(t) {
			continue
		}
		if !found || !w.Effective.Before(since) {
			best, since, found = history[i], w.Effective, true
		}
	}
	return best, found
}

// CurrentLimits returns the limits in force for an account at t.
func CurrentLimits(history []AccountLimits, accountID int64, t time.Time) (AccountLimits, bool) {
	var own []AccountLimits
	for _, l := range history {
		if l.AccountID == accountID {
			own = append(own, l)
		}
	}
	return EffectiveAt(own, t)
}

// CurrentValue returns the value of a named rate in force at t.
func CurrentValue(history []ExchangeRateValue, rateID int64, t time.Time) (ExchangeRateValue, bool) {
	var own []ExchangeRateValue
	for _, v := range history {
		if v.RateID == rateID {
			own = append(own, v)
		}
	}
	return EffectiveAt(own, t)
}
