package engine

import (
	. "github.com/cricklet/minimaxgo/internal/helpers"
	"github.com/cricklet/minimaxgo/internal/rules"
	"github.com/cricklet/minimaxgo/internal/search"
	"github.com/notnil/chess"
)

// Engine owns the current position and history. It is used from a single
// goroutine; searches run on its Worker against position snapshots.
type Engine struct {
	Logger Logger

	state  *SearchState
	worker *Worker

	options Options

	position Optional[*chess.Position]
	history  []*chess.Move

	submitted int64
}

type engineConfig struct {
	logger  Logger
	options Options
	hook    SearchHook
}

type EngineOption func(*engineConfig)

func WithLogger(logger Logger) EngineOption {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

func WithOptions(options Options) EngineOption {
	return func(c *engineConfig) {
		c.options = options
	}
}

// WithSearchHook registers a callback that runs on the worker after each
// bestmove is written.
func WithSearchHook(hook SearchHook) EngineOption {
	return func(c *engineConfig) {
		c.hook = hook
	}
}

func NewEngine(output *LineWriter, options ...EngineOption) *Engine {
	config := engineConfig{
		logger:  &SilentLogger,
		options: DefaultOptions,
	}
	for _, option := range options {
		option(&config)
	}

	state := &SearchState{}
	state.SetDebug(config.options.Debug)

	return &Engine{
		Logger:  config.logger,
		state:   state,
		worker:  NewWorker(state, output, config.logger, config.hook),
		options: config.options,
	}
}

func (e *Engine) Reset() {
	e.position = Empty[*chess.Position]()
	e.history = nil
}

func (e *Engine) SetPosition(position *chess.Position, history []*chess.Move) {
	e.position = Some(position)
	e.history = append([]*chess.Move{}, history...)
}

func (e *Engine) HasPosition() bool {
	return e.position.HasValue()
}

func (e *Engine) Position() Optional[*chess.Position] {
	return e.position
}

func (e *Engine) History() []*chess.Move {
	return append([]*chess.Move{}, e.history...)
}

// Go queues a search of the current position and returns without waiting for
// it. A go without a depth searches to the engine's default depth.
func (e *Engine) Go(searchMoves []*chess.Move, limits search.Limits) (search.Request, Error) {
	if e.position.IsEmpty() {
		return search.Request{}, Errorf("no position set")
	}

	snapshot, err := rules.Snapshot(e.position.Value())
	if !IsNil(err) {
		return search.Request{}, err
	}

	if limits.Depth.IsEmpty() {
		limits.Depth = Some(e.options.DefaultDepth)
	}

	e.submitted++
	request := search.NewRequest(e.submitted, snapshot, searchMoves, limits)
	if !e.worker.Submit(request) {
		e.submitted--
		return search.Request{}, Errorf("search worker is closed")
	}

	return request, NilError
}

// Stop cuts short every search submitted so far. Each still writes a bestmove.
func (e *Engine) Stop() {
	e.state.AbortThrough(e.submitted)
}

func (e *Engine) SetDebug(debug bool) {
	e.options.Debug = debug
	e.state.SetDebug(debug)
}

func (e *Engine) Debug() bool {
	return e.options.Debug
}

func (e *Engine) SetDefaultDepth(depth int) {
	e.options.DefaultDepth = depth
}

func (e *Engine) Options() Options {
	return e.options
}

func (e *Engine) IsBusy() bool {
	return e.state.IsBusy()
}

func (e *Engine) Submitted() int64 {
	return e.submitted
}

func (e *Engine) Pending() int {
	return e.worker.Pending()
}

func (e *Engine) Close() {
	e.worker.Close()
}
