package system

import (
	"fmt"
	"math/rand"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"

	"github.com/brandon-schabel/td-engine/nav"
)

// RecoveryPolicy picks the escape velocity used while an enemy recovers from
// being stuck. The exact rule is deliberately tunable: the contract is only
// that the result is nonzero and that repeated obstruction yields a
// different direction.
type RecoveryPolicy interface {
	EscapeVelocity(g *nav.Grid, pos cp.Vector, speed float64, movement nav.MovementType, avoid cp.Vector) cp.Vector
}

var compassDirs = [8]cp.Vector{
	{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1},
	{X: 0.7071, Y: 0.7071}, {X: 0.7071, Y: -0.7071},
	{X: -0.7071, Y: 0.7071}, {X: -0.7071, Y: -0.7071},
}

// DefaultRecoveryPolicy picks a random unblocked compass direction, favoring
// ones that point away from the direction that just failed.
type DefaultRecoveryPolicy struct {
	rng *rand.Rand
}

func NewDefaultRecoveryPolicy(seed int64) *DefaultRecoveryPolicy {
	return &DefaultRecoveryPolicy{rng: rand.New(rand.NewSource(seed))}
}

func (p *DefaultRecoveryPolicy) EscapeVelocity(g *nav.Grid, pos cp.Vector, speed float64, movement nav.MovementType, avoid cp.Vector) cp.Vector {
	if speed <= 0 {
		speed = 1
	}
	policy := nav.PolicyFor(movement)
	cx, cy := g.WorldToGrid(pos)

	open := make([]cp.Vector, 0, len(compassDirs))
	away := make([]cp.Vector, 0, len(compassDirs))
	for _, d := range compassDirs {
		nx := cx + sign(d.X)
		ny := cy + sign(d.Y)
		if !policy.Passable(g, nx, ny) {
			continue
		}
		open = append(open, d)
		if d.Dot(avoid) <= 0 {
			away = append(away, d)
		}
	}

	pick := away
	if len(pick) == 0 {
		pick = open
	}
	if len(pick) == 0 {
		// Fully enclosed; push in a random direction anyway so the escape
		// velocity is never zero.
		pick = compassDirs[:]
	}
	return pick[p.rng.Intn(len(pick))].Mult(speed)
}

func sign(v float64) int {
	switch {
	case v > 0.01:
		return 1
	case v < -0.01:
		return -1
	default:
		return 0
	}
}

// ScriptRecoveryPolicy delegates the escape-direction choice to a tengo
// script so designers can tune recovery behavior without a rebuild. The
// script reads __pos_x/__pos_y/__speed/__avoid_x/__avoid_y plus an __engine
// map exposing blocked(dx, dy) and rand(), and assigns escape_x/escape_y.
// Any script failure falls back to the default policy.
type ScriptRecoveryPolicy struct {
	compiled *tengo.Compiled
	fallback RecoveryPolicy
	rng      *rand.Rand
}

func NewScriptRecoveryPolicy(src []byte, seed int64) (*ScriptRecoveryPolicy, error) {
	script := tengo.NewScript(src)
	_ = script.Add("__pos_x", 0.0)
	_ = script.Add("__pos_y", 0.0)
	_ = script.Add("__speed", 0.0)
	_ = script.Add("__avoid_x", 0.0)
	_ = script.Add("__avoid_y", 0.0)
	_ = script.Add("__engine", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("recovery: compile script: %w", err)
	}
	return &ScriptRecoveryPolicy{
		compiled: compiled,
		fallback: NewDefaultRecoveryPolicy(seed),
		rng:      rand.New(rand.NewSource(seed)),
	}, nil
}

func (p *ScriptRecoveryPolicy) EscapeVelocity(g *nav.Grid, pos cp.Vector, speed float64, movement nav.MovementType, avoid cp.Vector) cp.Vector {
	v, err := p.run(g, pos, speed, movement, avoid)
	if err != nil {
		fmt.Printf("recovery: script error, using fallback: %v\n", err)
		return p.fallback.EscapeVelocity(g, pos, speed, movement, avoid)
	}
	if v.Length() < 1e-9 {
		return p.fallback.EscapeVelocity(g, pos, speed, movement, avoid)
	}
	return v
}

func (p *ScriptRecoveryPolicy) run(g *nav.Grid, pos cp.Vector, speed float64, movement nav.MovementType, avoid cp.Vector) (cp.Vector, error) {
	policy := nav.PolicyFor(movement)
	cx, cy := g.WorldToGrid(pos)

	engine := &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"blocked": &tengo.UserFunction{Name: "blocked", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) < 2 {
				return tengo.TrueValue, nil
			}
			dx, _ := tengo.ToInt(args[0])
			dy, _ := tengo.ToInt(args[1])
			if policy.Passable(g, cx+dx, cy+dy) {
				return tengo.FalseValue, nil
			}
			return tengo.TrueValue, nil
		}},
		"rand": &tengo.UserFunction{Name: "rand", Value: func(args ...tengo.Object) (tengo.Object, error) {
			return &tengo.Float{Value: p.rng.Float64()}, nil
		}},
	}}

	sets := []struct {
		name  string
		value any
	}{
		{"__pos_x", pos.X},
		{"__pos_y", pos.Y},
		{"__speed", speed},
		{"__avoid_x", avoid.X},
		{"__avoid_y", avoid.Y},
		{"__engine", engine},
	}
	for _, s := range sets {
		if err := p.compiled.Set(s.name, s.value); err != nil {
			return cp.Vector{}, err
		}
	}
	if err := p.compiled.Run(); err != nil {
		return cp.Vector{}, err
	}

	if !p.compiled.IsDefined("escape_x") || !p.compiled.IsDefined("escape_y") {
		return cp.Vector{}, fmt.Errorf("script did not assign escape_x/escape_y")
	}
	x := p.compiled.Get("escape_x").Float()
	y := p.compiled.Get("escape_y").Float()
	return cp.Vector{X: x, Y: y}, nil
}
