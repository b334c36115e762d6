package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"cwc-viewer/internal/logger"
)

const defaultStepTimeout = 10 * time.Second

type Shutdownable interface {
	Shutdown()
}

type namedComponent struct {
	name      string
	component Shutdownable
}

type Manager struct {
	components  []namedComponent
	logger      logger.Logger
	stepTimeout time.Duration
	mu          sync.Mutex
	done        chan struct{}
	ctx         context.Context
	cancel      context.CancelFunc
}

func NewManager(parent context.Context, log logger.Logger) *Manager {
	if log == nil {
		log = logger.Nop()
	}
	ctx, cancel := context.WithCancel(parent)

	return &Manager{
		logger:      log,
		stepTimeout: defaultStepTimeout,
		done:        make(chan struct{}),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Register adds a component. Components shut down in reverse registration order.
func (m *Manager) Register(name string, component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.components = append(m.components, namedComponent{name: name, component: component})
}

// Listen shuts down on SIGINT or SIGTERM and calls onSignal afterwards.
func (m *Manager) Listen(onSignal func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)

		select {
		case sig := <-sigChan:
			m.logger.Info("ShutdownManager", "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			m.Shutdown()
			if onSignal != nil {
				onSignal()
			}
		case <-m.done:
		}
	}()
}

// Shutdown runs every registered component's Shutdown once. Steps that
// exceed the step timeout are abandoned and logged.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return
	default:
		close(m.done)
	}

	m.logger.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
		"components": len(m.components),
	})

	m.cancel()

	for i := len(m.components) - 1; i >= 0; i-- {
		step := m.components[i]

		finished := make(chan struct{})
		go func() {
			defer close(finished)
			step.component.Shutdown()
		}()

		select {
		case <-finished:
			m.logger.Debug("ShutdownManager", "component shut down", map[string]interface{}{
				"component": step.name,
			})
		case <-time.After(m.stepTimeout):
			m.logger.Warning("ShutdownManager", "component shutdown timeout", map[string]interface{}{
				"component": step.name,
			})
		}
	}

	m.logger.Info("ShutdownManager", "shutdown sequence completed", nil)
}

func (m *Manager) Context() context.Context {
	return m.ctx
}

func (m *Manager) Done() <-chan struct{} {
	return m.done
}
