// Package planner holds the movement strategies that drive an
// articulated figure: plan a move sequence once, then step through it
// one external call at a time. Everything is synchronous and
// single-writer; replanning discards any unexecuted moves.
package planner

// Strategy is the planner/executor contract. ExecuteNextMove performs
// exactly one queued action and reports whether it succeeded; calling
// it with nothing queued returns false.
type Strategy interface {
	PlanSequence()
	ExecuteNextMove() bool
	SequenceComplete() bool
}

// Kind tags the concrete strategy variants.
type Kind int

const (
	KindWalker Kind = iota
	KindSnowball
)

func (k Kind) String() string {
	switch k {
	case KindWalker:
		return "walker"
	case KindSnowball:
		return "snowball"
	}
	return "unknown"
}

// Status is the uniform per-step status surface for drivers. Fields
// beyond Complete are variant-specific: Caught for the walker,
// Active/HitTarget/HitGround for the snowball.
type Status struct {
	Kind      Kind
	Complete  bool
	MovesLeft int

	Caught bool

	Active    bool
	HitTarget bool
	HitGround bool
}

// Planner is a tagged variant over the two concrete strategies, so
// drivers switch on Kind instead of probing concrete types.
type Planner struct {
	Kind     Kind
	Walker   *Walker
	Snowball *Snowball
}

func ForWalker(w *Walker) Planner {
	return Planner{Kind: KindWalker, Walker: w}
}

func ForSnowball(s *Snowball) Planner {
	return Planner{Kind: KindSnowball, Snowball: s}
}

// Strategy returns the active variant behind the uniform contract.
func (p Planner) Strategy() Strategy {
	switch p.Kind {
	case KindSnowball:
		return p.Snowball
	default:
		return p.Walker
	}
}

// Status reads the variant's current status without type probing at
// the call site.
func (p Planner) Status() Status {
	switch p.Kind {
	case KindSnowball:
		return p.Snowball.Status()
	default:
		return p.Walker.Status()
	}
}
