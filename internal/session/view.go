package session

import "sync"

// PageView is the rendered page of one session. A scroll request is held
// until the next render picks it up.
type PageView struct {
	mu      sync.Mutex
	anchor  string
	smooth  bool
	pending bool
}

func (v *PageView) ScrollIntoView(anchor string, smooth bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.anchor = anchor
	v.smooth = smooth
	v.pending = true
}

// TakeScroll returns and clears the pending scroll request.
func (v *PageView) TakeScroll() (anchor string, smooth bool, ok bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.pending {
		return "", false, false
	}
	v.pending = false
	return v.anchor, v.smooth, true
}
