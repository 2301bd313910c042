package engine

import (
	"context"

	. "github.com/cricklet/minimaxgo/internal/helpers"
	"github.com/cricklet/minimaxgo/internal/search"
)

type SearchHook func(request search.Request, result search.Result)

// Worker runs queued search requests one at a time, in submission order, on a
// single goroutine.
type Worker struct {
	Logger Logger

	state  *SearchState
	queue  *Queue[search.Request]
	output *LineWriter
	hook   SearchHook

	done chan bool
}

func NewWorker(state *SearchState, output *LineWriter, logger Logger, hook SearchHook) *Worker {
	w := &Worker{
		Logger: logger,
		state:  state,
		queue:  NewQueue[search.Request](),
		output: output,
		hook:   hook,
		done:   make(chan bool),
	}
	go w.run()
	return w
}

func (w *Worker) Submit(request search.Request) bool {
	return w.queue.Push(request)
}

func (w *Worker) Pending() int {
	return w.queue.Len()
}

func (w *Worker) run() {
	defer close(w.done)

	for {
		request, ok := w.queue.Pop()
		if !ok || w.state.StopRequested() {
			return
		}

		w.state.setBusy(true)
		result := w.search(request)

		lines := []string{}
		if w.state.Debug() {
			lines = append(lines, result.Info())
		}
		lines = append(lines, "bestmove "+result.BestMove())

		err := w.output.WriteLines(lines...)
		if !IsNil(err) {
			w.Logger.Println("failed to write bestmove:", err.Message())
		}
		w.state.setBusy(false)

		if w.hook != nil {
			w.hook(request, result)
		}
	}
}

func (w *Worker) search(request search.Request) search.Result {
	searcher := search.NewSearcher(w.Logger)
	searcher.ShouldStop = func() bool {
		return w.state.ShouldAbort(request.Sequence)
	}
	if w.state.ShouldAbort(request.Sequence) {
		// stopped while queued, only the first candidate is needed
		request.Limits.Nodes = Some(0)
	}
	return searcher.Search(context.Background(), request, search.DefaultDepth)
}

// Close aborts the current search and waits for the worker to exit.
// Queued requests are dropped.
func (w *Worker) Close() {
	w.state.RequestStop()
	w.queue.Close()
	<-w.done
}
