package stock

import "sync"

// Notifier de-duplicates alerts for (item name, alert kind) pairs over its own
// lifetime. One value is held per session and reset only when that session
// ends, so restocking an item under the same name will not re-alert until a
// fresh session starts.
type Notifier struct {
	mu    sync.Mutex
	fired map[string]struct{}
}

func NewNotifier() *Notifier {
	return &Notifier{fired: make(map[string]struct{})}
}

// ShouldNotify reports whether an alert for the pair should fire now, and
// records it so subsequent calls for the same pair return false.
func (n *Notifier) ShouldNotify(itemName, kind string) bool {
	key := itemName + "-" + kind
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, ok := n.fired[key]; ok {
		return false
	}
	n.fired[key] = struct{}{}
	return true
}

// Reset clears all recorded alerts.
func (n *Notifier) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.fired = make(map[string]struct{})
}
