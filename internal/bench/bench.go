package bench

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	. "github.com/cricklet/minimaxgo/internal/helpers"
	"github.com/cricklet/minimaxgo/internal/rules"
	"github.com/cricklet/minimaxgo/internal/search"
	"github.com/dustin/go-humanize"
)

var BenchFens = []string{
	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
	"2kr3r/p1p2ppp/2n1b3/2bqp3/Pp1p4/1P1P1N1P/2PBBPP1/R2Q1RK1 w - - 24 13",
	"k7/8/1K6/8/8/8/8/7Q w - - 0 1",
}

type Config struct {
	Depth int      `validate:"min=1,max=8"`
	Fens  []string `validate:"required,min=1"`
}

var DefaultConfig = Config{
	Depth: search.DefaultDepth,
	Fens:  BenchFens,
}

var AllConfigArgs = []string{
	"depth=N",
	"positions=N",
}

func ConfigFromArgs(args ...string) (Config, Error) {
	config := DefaultConfig

	for _, arg := range args {
		if strings.HasPrefix(arg, "depth=") {
			n, err := strconv.Atoi(strings.TrimPrefix(arg, "depth="))
			if err != nil {
				return config, Wrap(err)
			}
			config.Depth = n
		} else if strings.HasPrefix(arg, "positions=") {
			n, err := strconv.Atoi(strings.TrimPrefix(arg, "positions="))
			if err != nil {
				return config, Wrap(err)
			}
			config.Fens = BenchFens[:MaxInt(0, MinInt(n, len(BenchFens)))]
		} else {
			return config, Errorf("unknown arg: %s", arg)
		}
	}

	return config, Validate(config)
}

type Entry struct {
	Fen    string
	Result search.Result
}

type Report struct {
	Entries []Entry
	Nodes   int
	Elapsed time.Duration
}

func (r Report) NodesPerSecond() int {
	if r.Elapsed <= 0 {
		return 0
	}
	return int(float64(r.Nodes) / r.Elapsed.Seconds())
}

func (r Report) String() string {
	result := ""
	for _, e := range r.Entries {
		result += fmt.Sprintf("%v: bestmove %v %v (%v nodes)\n",
			e.Fen, e.Result.BestMove(), search.ScoreString(e.Result.Score), humanize.Comma(int64(e.Result.Nodes)))
	}
	result += fmt.Sprintf("%v positions, %v nodes in %v, %v nodes/s",
		len(r.Entries), humanize.Comma(int64(r.Nodes)), r.Elapsed.Round(time.Millisecond),
		humanize.Comma(int64(r.NodesPerSecond())))
	return result
}

// Run searches every configured position to a fixed depth.
func Run(ctx context.Context, config Config, progress ProgressBar, logger Logger) (Report, Error) {
	report := Report{}

	err := Validate(config)
	if !IsNil(err) {
		return report, err
	}

	defer progress.Close()

	searcher := search.NewSearcher(logger)
	start := time.Now()
	for i, fen := range config.Fens {
		pos, err := rules.ParseFen(fen)
		if !IsNil(err) {
			return report, err
		}

		request := search.NewRequest(int64(i+1), pos, nil, search.Limits{Depth: Some(config.Depth)})
		result := searcher.Search(ctx, request, config.Depth)
		if ctx.Err() != nil {
			return report, Wrap(ctx.Err())
		}

		report.Entries = append(report.Entries, Entry{Fen: fen, Result: result})
		report.Nodes += result.Nodes
		report.Elapsed = time.Since(start)
		progress.Add(1)
	}

	return report, NilError
}
