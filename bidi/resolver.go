package bidi

import (
	"context"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
	pool "github.com/jolestar/go-commons-pool"
	"golang.org/x/text/unicode/bidi"
)

// MaxDepth is the maximum embedding level (and stack depth) as defined by
// UAX#9. Explicit codes that would exceed it are absorbed, not an error.
const MaxDepth = 125

// A Run is a maximal span of text sharing one resolved embedding level.
// Start and Length are codepoint offsets into the logical text. The runs
// returned by ResolveLevels are contiguous, non-overlapping, ordered by
// Start, and partition the whole input. Level parity determines direction:
// even = LTR, odd = RTL.
type Run struct {
	Start  int
	Length int
	Level  int
}

// IsRTL is true for runs with an odd embedding level.
func (run Run) IsRTL() bool {
	return run.Level%2 == 1
}

func (run Run) String() string {
	return fmt.Sprintf("[%d-(%d)-%d]", run.Start, run.Level, run.Start+run.Length)
}

// RunsString formats a run list for tracing and test output.
func RunsString(runs []Run) string {
	var b strings.Builder
	for _, run := range runs {
		b.WriteString(run.String())
		b.WriteString(" ")
	}
	return strings.TrimSpace(b.String())
}

// --- Embedding frames --------------------------------------------------------

type override int8

const (
	overrideNone override = iota
	overrideL             // inside an LRO scope: strong types forced to L
	overrideR             // inside an RLO scope: strong types forced to R
)

// A frame holds the state pushed by one explicit embedding, override or
// isolate initiator.
type frame struct {
	level   int
	ovr     override
	isolate bool
}

// leastGreaterOdd and leastGreaterEven compute the next embedding level of
// the required parity (UAX#9 rules X2–X5).
func leastGreaterOdd(level int) int {
	return (level + 1) | 1
}

func leastGreaterEven(level int) int {
	return (level + 2) &^ 1
}

// --- Resolver ----------------------------------------------------------------

// resolver holds the per-call working state: the frame stack and the run
// list under construction. Resolvers are short-lived objects; to avoid
// allocating them per call they are pooled (see below).
type resolver struct {
	stack      *arraystack.Stack
	runs       []Run
	baseLevel  int
	current    int      // level of the run in progress
	ovr        override // override status of the top frame
	runStart   int
	lastStrong int // position just past the last strong character
}

func (rs *resolver) reset(baseLevel int) {
	rs.stack.Clear()
	rs.runs = rs.runs[:0]
	rs.baseLevel = baseLevel
	rs.current = baseLevel
	rs.ovr = overrideNone
	rs.runStart = 0
	rs.lastStrong = 0
}

// closeRun finishes the in-progress run [runStart, pos) at the current level.
// Empty spans are skipped; the partition invariant is unaffected because the
// next run starts at pos either way.
func (rs *resolver) closeRun(pos int) {
	if pos > rs.runStart {
		rs.runs = append(rs.runs, Run{Start: rs.runStart, Length: pos - rs.runStart, Level: rs.current})
	}
	rs.runStart = pos
}

// push processes an explicit initiator code at position pos. Overflow beyond
// MaxDepth is absorbed: no push, no level change, and resolution of
// subsequent characters is unaffected.
func (rs *resolver) push(pos, newLevel int, ovr override, isolate bool) {
	if newLevel > MaxDepth || rs.stack.Size() >= MaxDepth {
		T().Debugf("bidi: embedding depth %d reached, ignoring explicit code at %d", MaxDepth, pos)
		return
	}
	rs.closeRun(pos)
	rs.stack.Push(frame{level: newLevel, ovr: ovr, isolate: isolate})
	rs.current = newLevel
	rs.ovr = ovr
}

// restore resets current level and override status from the frame now on top
// of the stack, or from the paragraph base when the stack is empty.
func (rs *resolver) restore() {
	if top, ok := rs.stack.Peek(); ok {
		f := top.(frame)
		rs.current = f.level
		rs.ovr = f.ovr
		return
	}
	rs.current = rs.baseLevel
	rs.ovr = overrideNone
}

// popEmbedding handles PDF: it pops the top frame if that frame is an
// embedding or override. PDF never terminates an isolate, and popping an
// empty stack is a no-op.
func (rs *resolver) popEmbedding(pos int) {
	top, ok := rs.stack.Peek()
	if !ok || top.(frame).isolate {
		return
	}
	rs.closeRun(pos)
	rs.stack.Pop()
	rs.restore()
}

// popIsolate handles PDI: it removes frames up to and including the nearest
// isolate frame. Without an open isolate it is a no-op.
func (rs *resolver) popIsolate(pos int) {
	if !rs.hasIsolate() {
		return
	}
	rs.closeRun(pos)
	for {
		top, ok := rs.stack.Pop()
		if !ok || top.(frame).isolate {
			break
		}
	}
	rs.restore()
}

// embeddingLevel is the level of the innermost open explicit scope, or the
// paragraph base level outside of any scope.
func (rs *resolver) embeddingLevel() int {
	if top, ok := rs.stack.Peek(); ok {
		return top.(frame).level
	}
	return rs.baseLevel
}

func (rs *resolver) hasIsolate() bool {
	for _, v := range rs.stack.Values() {
		if v.(frame).isolate {
			return true
		}
	}
	return false
}

// character processes one non-explicit codepoint: it applies the active
// override, and for strong types moves the current level to the required
// parity. Neutrals and weak types continue at the current level, pending
// resolution: when a following strong character changes direction, the
// pending tail since the last strong character resolves to the embedding
// level (UAX#9 rule N2), so a separating space between two opposing words
// never travels with the wrong run.
func (rs *resolver) character(pos int, c bidi.Class) {
	effective := c
	switch rs.ovr {
	case overrideL:
		effective = bidi.L
	case overrideR:
		effective = bidi.R
	}
	if !isStrong(effective) {
		return
	}
	mismatch := effective == bidi.L && rs.current%2 != 0 ||
		effective != bidi.L && rs.current%2 == 0
	if !mismatch {
		rs.lastStrong = pos + 1
		return
	}
	tail := rs.lastStrong
	if tail < rs.runStart {
		tail = rs.runStart
	}
	level := rs.current
	if emb := rs.embeddingLevel(); tail < pos && emb != rs.current {
		rs.closeRun(tail)
		rs.current = emb
		level = emb
	}
	rs.lastStrong = pos + 1
	newLevel := level
	if effective == bidi.L && level%2 != 0 ||
		effective != bidi.L && level%2 == 0 {
		newLevel = level + 1
	}
	if newLevel > MaxDepth { // keep the level bounded even at maximum depth
		return
	}
	if newLevel != rs.current {
		rs.closeRun(pos)
		rs.current = newLevel
	}
}

// ResolveLevels consumes the classified codepoints of one paragraph and
// produces its level runs, scanning left to right over logical order.
// baseLevel is 0 for LTR paragraphs and 1 for RTL paragraphs (see BaseLevel).
//
// The returned runs partition [0, len(classes)) exactly. Consecutive runs may
// share a level where an explicit formatting code forced a split; reordering
// treats adjacent same-level runs identically to one run.
func ResolveLevels(classes []bidi.Class, baseLevel int) []Run {
	rs := borrowResolver()
	defer rs.releaseIntoPool()
	rs.reset(baseLevel)
	for i, c := range classes {
		switch c {
		case bidi.LRE:
			rs.push(i, leastGreaterEven(rs.current), overrideNone, false)
		case bidi.RLE:
			rs.push(i, leastGreaterOdd(rs.current), overrideNone, false)
		case bidi.LRO:
			rs.push(i, leastGreaterEven(rs.current), overrideL, false)
		case bidi.RLO:
			rs.push(i, leastGreaterOdd(rs.current), overrideR, false)
		case bidi.LRI:
			rs.push(i, leastGreaterEven(rs.current), overrideNone, true)
		case bidi.RLI, bidi.FSI:
			// FSI is treated like RLI in this subset.
			rs.push(i, leastGreaterOdd(rs.current), overrideNone, true)
		case bidi.PDF:
			rs.popEmbedding(i)
		case bidi.PDI:
			rs.popIsolate(i)
		default:
			rs.character(i, c)
		}
	}
	rs.closeRun(len(classes))
	T().Debugf("bidi: resolved %s", RunsString(rs.runs))
	runs := make([]Run, len(rs.runs))
	copy(runs, rs.runs) // rs.runs is pooled backing storage
	return runs
}

// BaseLevel derives the paragraph embedding level from the first strong
// character (UAX#9 rules P2/P3): R or AL yield level 1, L yields level 0,
// and a paragraph without strong characters defaults to level 0.
func BaseLevel(classes []bidi.Class) int {
	for _, c := range classes {
		if !isStrong(c) {
			continue
		}
		if c == bidi.R || c == bidi.AL {
			return 1
		}
		return 0
	}
	return 0
}

// --- Resolver pool -------------------------------------------------------

// Resolvers are short-lived objects. To avoid multiple allocation of their
// stacks and run lists we will pool them.
type resolverPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalResolverPool *resolverPool

func init() {
	globalResolverPool = &resolverPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			rs := &resolver{
				stack: arraystack.New(),
				runs:  make([]Run, 0, 16),
			}
			return rs, nil
		})
	globalResolverPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalResolverPool.opool = pool.NewObjectPool(globalResolverPool.ctx, factory, config)
}

func borrowResolver() *resolver {
	o, _ := globalResolverPool.opool.BorrowObject(globalResolverPool.ctx)
	return o.(*resolver)
}

func (rs *resolver) releaseIntoPool() {
	_ = globalResolverPool.opool.ReturnObject(globalResolverPool.ctx, rs)
}
