package dashboard

import "sync"

// Pager tracks the current page (1-indexed) and the page count reported by
// the last response.
type Pager struct {
	mu      sync.Mutex
	current int
	total   int
}

// NewPager starts on page 1 of 1.
func NewPager() *Pager {
	return &Pager{current: 1, total: 1}
}

// Current returns the current page.
func (p *Pager) Current() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Total returns the number of pages.
func (p *Pager) Total() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.total
}

// SetTotal records the page count from a response. Values below 1 count as 1
// and the current page is clamped into range.
func (p *Pager) SetTotal(total int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if total < 1 {
		total = 1
	}
	p.total = total
	if p.current > total {
		p.current = total
	}
}

// Next moves one page forward. At the last page it does nothing and returns false.
func (p *Pager) Next() (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current >= p.total {
		return p.current, false
	}
	p.current++
	return p.current, true
}

// Previous moves one page back. At page 1 it does nothing and returns false.
func (p *Pager) Previous() (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current <= 1 {
		return p.current, false
	}
	p.current--
	return p.current, true
}

// HasNext reports whether Next would move.
func (p *Pager) HasNext() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current < p.total
}

// HasPrevious reports whether Previous would move.
func (p *Pager) HasPrevious() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current > 1
}
