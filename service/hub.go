package service

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Hub owns registered services and drives them through their lifecycle
// in dependency order
type Hub struct {
	mu       sync.RWMutex
	services map[string]Service
	order    []string // dependency order, resolved by InitAll
	live     []string // services whose Init succeeded, in order
	logger   *zap.Logger
}

// NewHub creates an empty hub
func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{services: make(map[string]Service), logger: logger}
}

// Register adds svc; names must be unique
func (h *Hub) Register(svc Service) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	name := svc.Name()
	if _, dup := h.services[name]; dup {
		return fmt.Errorf("service already registered: %s", name)
	}
	h.services[name] = svc
	h.order = nil
	return nil
}

// Get looks up a service by name
func (h *Hub) Get(name string) (Service, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	svc, ok := h.services[name]
	return svc, ok
}

// MustGet returns the named service as T, panicking when absent or of another type
func MustGet[T any](h *Hub, name string) T {
	svc, ok := h.Get(name)
	if !ok {
		panic(fmt.Sprintf("service not found: %s", name))
	}
	typed, ok := svc.(T)
	if !ok {
		panic(fmt.Sprintf("service %s: type mismatch, got %T", name, svc))
	}
	return typed
}

// Names returns the registered names in sorted order
func (h *Hub) Names() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.sortedNames()
}

func (h *Hub) sortedNames() []string {
	names := make([]string, 0, len(h.services))
	for name := range h.services {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// InitAll initializes every service after its dependencies
// args holds the Init arguments per service name
// A failure stops the services initialized so far, newest first
func (h *Hub) InitAll(args map[string][]any) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	order, err := h.resolve()
	if err != nil {
		return err
	}
	h.order = order

	h.live = h.live[:0]
	for _, name := range order {
		if err := h.services[name].Init(args[name]...); err != nil {
			h.unwind()
			return fmt.Errorf("service %s init failed: %w", name, err)
		}
		h.live = append(h.live, name)
		h.logger.Debug("service initialized", zap.String("service", name))
	}
	return nil
}

// StartAll starts services in dependency order
// A failure stops every initialized service, including the one that failed
func (h *Hub) StartAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.order == nil {
		return errors.New("services not initialized")
	}
	for _, name := range h.live {
		if err := h.services[name].Start(); err != nil {
			h.unwind()
			return fmt.Errorf("service %s start failed: %w", name, err)
		}
		h.logger.Debug("service started", zap.String("service", name))
	}
	return nil
}

// StopAll stops initialized services in reverse order; repeat calls are no-ops
// Every service is stopped even when some fail, the failures are joined
func (h *Hub) StopAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.unwind()
}

// unwind stops live services newest first and forgets them
func (h *Hub) unwind() error {
	var errs []error
	for _, name := range slices.Backward(h.live) {
		if err := h.services[name].Stop(); err != nil {
			h.logger.Warn("service stop failed", zap.String("service", name), zap.Error(err))
			errs = append(errs, fmt.Errorf("service %s: %w", name, err))
		}
	}
	h.live = h.live[:0]
	return errors.Join(errs...)
}

// resolve orders services depth-first so each follows its dependencies
// Visiting names in sorted order keeps the result stable
func (h *Hub) resolve() ([]string, error) {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(h.services))
	order := make([]string, 0, len(h.services))
	var path []string

	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case done:
			return nil
		case visiting:
			cycle := append(slices.Clone(path[slices.Index(path, name):]), name)
			return fmt.Errorf("circular dependency: %s", strings.Join(cycle, " -> "))
		}

		state[name] = visiting
		path = append(path, name)

		deps := slices.Clone(h.services[name].Dependencies())
		slices.Sort(deps)
		for _, dep := range deps {
			if _, ok := h.services[dep]; !ok {
				return fmt.Errorf("service %s depends on unregistered service: %s", name, dep)
			}
			if err := visit(dep); err != nil {
				return err
			}
		}

		path = path[:len(path)-1]
		state[name] = done
		order = append(order, name)
		return nil
	}

	for _, name := range h.sortedNames() {
		if err := visit(name); err != nil {
			return nil, err
		}
	}
	return order, nil
}
