package multiview

// playerPool is the LRU admission control bounding concurrently active
// players. ids are ordered most-recently-activated first. Eviction only
// changes membership; tearing the player down is the observer's job.
type playerPool struct {
	ids []string
	max int
}

func newPlayerPool(max int) *playerPool {
	return &playerPool{max: max}
}

// activate moves id to the front, inserting it if absent. When the insert
// pushes the pool over its bound, the least-recently-activated id is evicted
// and returned.
func (p *playerPool) activate(id string) (evicted string, didEvict bool) {
	for i, existing := range p.ids {
		if existing == id {
			copy(p.ids[1:i+1], p.ids[:i])
			p.ids[0] = id
			return "", false
		}
	}

	p.ids = append([]string{id}, p.ids...)
	if len(p.ids) > p.max {
		evicted = p.ids[len(p.ids)-1]
		p.ids = p.ids[:len(p.ids)-1]
		return evicted, true
	}

	return "", false
}

func (p *playerPool) deactivate(id string) bool {
	for i, existing := range p.ids {
		if existing == id {
			p.ids = append(p.ids[:i], p.ids[i+1:]...)
			return true
		}
	}

	return false
}

func (p *playerPool) deactivateAll() {
	p.ids = nil
}

func (p *playerPool) contains(id string) bool {
	for _, existing := range p.ids {
		if existing == id {
			return true
		}
	}

	return false
}

func (p *playerPool) isFull() bool {
	return len(p.ids) >= p.max
}

func (p *playerPool) size() int {
	return len(p.ids)
}

func (p *playerPool) active() []string {
	ids := make([]string, len(p.ids))
	copy(ids, p.ids)

	return ids
}
