package search

import (
	"context"
	"math"
	"time"

	"github.com/cricklet/minimaxgo/internal/evaluation"
	. "github.com/cricklet/minimaxgo/internal/helpers"
	"github.com/cricklet/minimaxgo/internal/rules"
	"github.com/notnil/chess"
)

const (
	DefaultDepth = 3
	MinDepth     = 1
	MaxDepth     = 8

	// MateScore is reduced by the ply at which mate happens so that faster
	// mates score higher.
	MateScore = 1_000_000

	pollInterval = 1024
)

func IsMateScore(score int) bool {
	return score > MateScore-1000 || score < -MateScore+1000
}

type EvaluateFunc func(pos *chess.Position, player chess.Color) int

type Searcher struct {
	Logger Logger

	// Evaluate scores leaves. Defaults to evaluation.Evaluate.
	Evaluate EvaluateFunc

	// ShouldStop is polled while searching. A true result aborts the search.
	ShouldStop func() bool
}

func NewSearcher(logger Logger) *Searcher {
	return &Searcher{
		Logger:   logger,
		Evaluate: evaluation.Evaluate,
	}
}

type searchRun struct {
	ctx        context.Context
	evaluate   EvaluateFunc
	shouldStop func() bool

	rootPlayer chess.Color
	nodeLimit  Optional[int]

	nodes   int
	aborted bool
}

func (r *searchRun) poll() {
	if r.nodeLimit.HasValue() && r.nodes >= r.nodeLimit.Value() {
		r.aborted = true
	}
	if r.nodes%pollInterval != 0 {
		return
	}
	if r.shouldStop != nil && r.shouldStop() {
		r.aborted = true
	}
	if r.ctx.Err() != nil {
		r.aborted = true
	}
}

func (r *searchRun) terminalScore(pos *chess.Position, ply int) int {
	if rules.IsCheckmate(pos) {
		if rules.SideToMove(pos) == r.rootPlayer {
			return -(MateScore - ply)
		}
		return MateScore - ply
	}
	return 0
}

func (r *searchRun) minimax(pos *chess.Position, maximizing bool, depthRemaining int, ply int) int {
	r.nodes++
	r.poll()
	if r.aborted {
		return 0
	}

	if depthRemaining == 0 {
		return r.evaluate(pos, r.rootPlayer)
	}

	moves := rules.LegalMoves(pos)
	if len(moves) == 0 {
		return r.terminalScore(pos, ply)
	}

	best := math.MaxInt
	if maximizing {
		best = math.MinInt
	}

	for _, move := range moves {
		score := r.minimax(rules.ApplyMove(pos, move), !maximizing, depthRemaining-1, ply+1)
		if r.aborted {
			return 0
		}
		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}

	return best
}

func SearchDepth(limits Limits, defaultDepth int) int {
	return max(MinDepth, limits.Depth.ValueOr(defaultDepth))
}

func candidateMoves(request Request) []*chess.Move {
	moves := rules.LegalMoves(request.Position)
	if len(request.SearchMoves) == 0 {
		return moves
	}
	allowed := MapSlice(request.SearchMoves, rules.MoveString)
	return FilterSlice(moves, func(m *chess.Move) bool {
		return Contains(allowed, rules.MoveString(m))
	})
}

// Search runs a fixed-depth minimax from the request's position. Among root
// moves with equal scores the last one enumerated wins. An aborted search
// returns the best fully searched root move, or the first candidate.
func (s *Searcher) Search(ctx context.Context, request Request, defaultDepth int) Result {
	start := time.Now()

	if duration := request.Limits.MoveTime.Duration(); duration.HasValue() {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, duration.Value())
		defer cancel()
	}

	evaluate := s.Evaluate
	if evaluate == nil {
		evaluate = evaluation.Evaluate
	}

	run := searchRun{
		ctx:        ctx,
		evaluate:   evaluate,
		shouldStop: s.ShouldStop,
		rootPlayer: rules.SideToMove(request.Position),
		nodeLimit:  request.Limits.Nodes,
	}

	depth := SearchDepth(request.Limits, defaultDepth)
	result := Result{Depth: depth}

	candidates := candidateMoves(request)
	if len(candidates) == 0 {
		result.Elapsed = time.Since(start)
		s.log("no legal moves in %v", rules.Fen(request.Position))
		return result
	}

	run.nodes++
	bestScore := math.MinInt
	for _, move := range candidates {
		score := run.minimax(rules.ApplyMove(request.Position, move), false, depth-1, 1)
		if run.aborted {
			break
		}
		if score >= bestScore {
			bestScore = score
			result.Move = Some(move)
		}
	}

	if result.Move.IsEmpty() {
		result.Move = Some(candidates[0])
		bestScore = 0
	}

	result.Score = bestScore
	result.Nodes = run.nodes
	result.Aborted = run.aborted
	result.Elapsed = time.Since(start)

	s.log("searched %v to depth %v: %v (%v, %v nodes, aborted %v)",
		request.ID, depth, result.BestMove(), ScoreString(result.Score), result.Nodes, result.Aborted)

	return result
}

func (s *Searcher) log(format string, args ...any) {
	if s.Logger != nil {
		s.Logger.Printf(format+"\n", args...)
	}
}
