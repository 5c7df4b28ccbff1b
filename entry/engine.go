package entry

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/aws/aws-lambda-go/events"

	"github.com/charanteja1799/text2sqlrag-project/app"
)

// Engine is the Lambda entry point of the service. It owns the one-time
// initialization gate and the two origin bindings around the shared
// application, and turns raw invocation payloads into HTTP responses.
type Engine struct {
	*Options
	gate    *Gate
	router  *Router
	running atomic.Int32
}

// NewEngine builds the engine. The application shell is constructed once
// and shared by both bindings; only the base path differs between them.
func NewEngine(entryOpts []Option, appOpts []app.Option) *Engine {
	e := &Engine{
		Options: NewOptions(entryOpts...),
	}
	e.gate = NewGate(e.runSetup)

	shell := app.NewEngine(appOpts...)
	e.router = NewRouter(map[Origin]Proxy{
		OriginAPIGateway:  newBinding(shell.Engine, APIGatewayBasePath),
		OriginFunctionURL: newBinding(shell.Engine, ""),
	})

	e.running.Store(1)
	return e
}

// Start starts the engine, allowing it to accept new invocations.
func (e *Engine) Start() {
	e.running.Store(1)
}

// Stop stops the engine, causing it to reject new invocations.
func (e *Engine) Stop() {
	e.running.Store(0)
}

// IsRunning returns true if the engine is currently running.
func (e *Engine) IsRunning() bool {
	return e.running.Load() == 1
}

// Initialized reports whether some invocation has completed setup.
func (e *Engine) Initialized() bool {
	return e.gate.Initialized()
}

func (e *Engine) runSetup(ctx context.Context) error {
	log.Printf("[Entry] initializing services")
	if e.Setup != nil {
		if err := e.Setup(ctx); err != nil {
			log.Printf("[Entry] initialize services error: %v", err)
			return err
		}
	}
	log.Printf("[Entry] services ready")
	return nil
}

// Handle processes one Lambda invocation. The order is fixed: keep-warm
// short-circuit, then the init gate, then origin classification, then
// dispatch to the matching binding. A setup failure is returned as the
// invocation error and leaves the gate unset for the next attempt.
func (e *Engine) Handle(ctx context.Context, event json.RawMessage) (events.APIGatewayV2HTTPResponse, error) {
	if !e.IsRunning() {
		return events.APIGatewayV2HTTPResponse{}, fmt.Errorf("entry: engine is stopped")
	}

	if e.WarmupMode && IsWarmup(event) {
		if err := e.gate.Ensure(ctx); err != nil {
			return events.APIGatewayV2HTTPResponse{}, fmt.Errorf("entry: initialize services: %w", err)
		}
		if e.DebugMode {
			log.Printf("[Entry] warmup ack")
		}
		return warmupResponse(e.gate.Initialized()), nil
	}

	if err := e.gate.Ensure(ctx); err != nil {
		return events.APIGatewayV2HTTPResponse{}, fmt.Errorf("entry: initialize services: %w", err)
	}

	origin := Classify(event)
	if e.DebugMode {
		log.Printf("[Entry] origin: %s", origin)
	}

	return e.router.Dispatch(ctx, origin, event)
}
