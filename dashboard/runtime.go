// Package dashboard wires chart callbacks to widget inputs and serves the
// dashboard over HTTP.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"spacex-dashboard/models"
	"spacex-dashboard/utils"
)

var (
	ErrUnknownOutput = errors.New("dashboard: unknown output")
	ErrInvalidInput  = errors.New("dashboard: invalid input")
	ErrStopped       = errors.New("dashboard: runtime stopped")
	ErrDuplicate     = errors.New("dashboard: output already registered")
)

// Callback computes an output's figure from its declared inputs.
type Callback func(in Inputs) (*models.Figure, error)

// Dependency describes one registered callback.
type Dependency struct {
	Output string   `json:"output"`
	Inputs []string `json:"inputs"`
}

// Dispatch is the result of one input-change event.
type Dispatch struct {
	ID      string                    `json:"dispatch_id"`
	Figures map[string]*models.Figure `json:"figures"`
}

type registration struct {
	Dependency
	fn Callback
}

type event struct {
	changed string
	output  string // set for single-output evaluation
	state   Inputs
	reply   chan result
}

type result struct {
	dispatch *Dispatch
	err      error
}

// Runtime serializes callback evaluation on a single event-loop goroutine.
type Runtime struct {
	logger *utils.Logger

	mu       sync.RWMutex
	order    []*registration
	byOutput map[string]*registration

	events    chan *event
	done      chan struct{}
	startOnce sync.Once
	stopOnce  sync.Once
}

// NewRuntime creates a Runtime. Call Run to start the event loop.
func NewRuntime(logger *utils.Logger) *Runtime {
	return &Runtime{
		logger:   logger,
		byOutput: make(map[string]*registration),
		events:   make(chan *event),
		done:     make(chan struct{}),
	}
}

// Register binds output to fn, evaluated whenever one of inputs changes.
func (rt *Runtime) Register(output string, inputs []string, fn Callback) error {
	if output == "" {
		return errors.New("dashboard: register: empty output id")
	}
	if len(inputs) == 0 {
		return fmt.Errorf("dashboard: register %s: no inputs", output)
	}
	if fn == nil {
		return fmt.Errorf("dashboard: register %s: nil callback", output)
	}

	rt.mu.Lock()
	defer rt.mu.Unlock()

	if _, ok := rt.byOutput[output]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, output)
	}
	reg := &registration{
		Dependency: Dependency{Output: output, Inputs: append([]string(nil), inputs...)},
		fn:         fn,
	}
	rt.order = append(rt.order, reg)
	rt.byOutput[output] = reg
	rt.logger.Debug("[runtime] registered %s <- %v", output, inputs)
	return nil
}

// Dependencies lists registered callbacks in registration order.
func (rt *Runtime) Dependencies() []Dependency {
	rt.mu.RLock()
	defer rt.mu.RUnlock()

	out := make([]Dependency, 0, len(rt.order))
	for _, reg := range rt.order {
		out = append(out, Dependency{Output: reg.Output, Inputs: append([]string(nil), reg.Inputs...)})
	}
	return out
}

// HasOutput reports whether output is registered.
func (rt *Runtime) HasOutput(output string) bool {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	_, ok := rt.byOutput[output]
	return ok
}

// Run consumes events until ctx is done. It returns nil on cancellation and
// must be called at most once.
func (rt *Runtime) Run(ctx context.Context) error {
	started := false
	rt.startOnce.Do(func() { started = true })
	if !started {
		return errors.New("dashboard: runtime already running")
	}
	defer rt.stopOnce.Do(func() { close(rt.done) })

	rt.logger.Info("[runtime] event loop started")
	for {
		select {
		case <-ctx.Done():
			rt.logger.Info("[runtime] event loop stopped")
			return nil
		case ev := <-rt.events:
			ev.reply <- rt.handle(ev)
		}
	}
}

// Update submits a change of input changed and returns the figures of every
// dependent output. An empty changed re-evaluates every output.
func (rt *Runtime) Update(ctx context.Context, changed string, state Inputs) (*Dispatch, error) {
	return rt.submit(ctx, &event{changed: changed, state: state})
}

// Evaluate computes a single output.
func (rt *Runtime) Evaluate(ctx context.Context, output string, state Inputs) (*models.Figure, error) {
	if !rt.HasOutput(output) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOutput, output)
	}
	d, err := rt.submit(ctx, &event{output: output, state: state})
	if err != nil {
		return nil, err
	}
	return d.Figures[output], nil
}

func (rt *Runtime) submit(ctx context.Context, ev *event) (*Dispatch, error) {
	ev.reply = make(chan result, 1)

	select {
	case rt.events <- ev:
	case <-rt.done:
		return nil, ErrStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case res := <-ev.reply:
		return res.dispatch, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// targets returns the callbacks an event triggers, in registration order.
func (rt *Runtime) targets(ev *event) ([]*registration, error) {
	rt.mu.RLock()
	defer rt.mu.RUnlock()

	if ev.output != "" {
		reg, ok := rt.byOutput[ev.output]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownOutput, ev.output)
		}
		return []*registration{reg}, nil
	}
	if ev.changed == "" {
		return append([]*registration(nil), rt.order...), nil
	}

	var out []*registration
	for _, reg := range rt.order {
		for _, in := range reg.Inputs {
			if in == ev.changed {
				out = append(out, reg)
				break
			}
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no output depends on %s", ErrInvalidInput, ev.changed)
	}
	return out, nil
}

func (rt *Runtime) handle(ev *event) result {
	id, err := uuid.NewV7()
	if err != nil {
		return result{err: fmt.Errorf("dashboard: dispatch id: %w", err)}
	}
	dispatch := &Dispatch{ID: id.String(), Figures: make(map[string]*models.Figure)}

	regs, err := rt.targets(ev)
	if err != nil {
		return result{err: err}
	}

	start := time.Now()
	for _, reg := range regs {
		fig, err := rt.call(reg, ev.state)
		if err != nil {
			rt.logger.Warn("[runtime] dispatch %s: %s failed: %v", dispatch.ID, reg.Output, err)
			return result{err: fmt.Errorf("dispatch %s: %s: %w", dispatch.ID, reg.Output, err)}
		}
		dispatch.Figures[reg.Output] = fig
	}

	rt.logger.Debug("[runtime] dispatch %s changed=%q outputs=%d in %v",
		dispatch.ID, ev.changed, len(dispatch.Figures), time.Since(start))
	return result{dispatch: dispatch}
}

// call runs one callback, turning a panic into an error so the loop survives.
func (rt *Runtime) call(reg *registration, state Inputs) (fig *models.Figure, err error) {
	in, err := state.only(reg.Inputs)
	if err != nil {
		return nil, err
	}

	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("callback panic: %v", p)
		}
	}()

	fig, err = reg.fn(in)
	if err == nil && fig == nil {
		err = errors.New("callback returned no figure")
	}
	return fig, err
}
