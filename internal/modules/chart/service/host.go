package service

import (
	"fmt"
	"sync"

	"healthlog/internal/modules/chart/domain"
	chartout "healthlog/internal/modules/chart/port/out"
)

// Instance is one mounted chart. It is only drawable until destroyed.
type Instance struct {
	id        int
	spec      domain.Spec
	host      *Host
	destroyed bool
}

func (i *Instance) ID() int { return i.id }

func (i *Instance) Spec() domain.Spec { return i.spec }

func (i *Instance) Draw(inspect int) (string, error) {
	i.host.mu.Lock()
	defer i.host.mu.Unlock()
	if i.destroyed {
		return "", fmt.Errorf("chart %d is destroyed", i.id)
	}
	return i.host.renderer.Render(i.spec, inspect)
}

func (i *Instance) Destroy() {
	i.host.mu.Lock()
	defer i.host.mu.Unlock()
	i.host.destroyLocked(i)
}

// Host owns the single live chart. Mount always destroys the previous
// instance before the new one exists.
type Host struct {
	mu       sync.Mutex
	renderer chartout.Renderer
	current  *Instance
	live     int
	next     int
}

func NewHost(renderer chartout.Renderer) *Host {
	return &Host{renderer: renderer}
}

func (h *Host) Mount(spec domain.Spec) *Instance {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.current != nil {
		h.destroyLocked(h.current)
	}
	h.next++
	inst := &Instance{id: h.next, spec: spec, host: h}
	h.current = inst
	h.live++
	return inst
}

func (h *Host) Current() *Instance {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

// Live counts instances created by this host that are not yet destroyed.
func (h *Host) Live() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.live
}

func (h *Host) Teardown() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.current != nil {
		h.destroyLocked(h.current)
	}
}

func (h *Host) destroyLocked(i *Instance) {
	if i.destroyed {
		return
	}
	i.destroyed = true
	i.spec = domain.Spec{}
	h.live--
	if h.current == i {
		h.current = nil
	}
}
