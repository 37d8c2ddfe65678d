package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/moon-runner/internal/config"
	"github.com/vovakirdan/moon-runner/internal/core"
)

const eps = 1e-9

func TestStepPlayerGravity(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Physics
	p := Player{X: 160, Y: 300, Radius: 18}

	if stepPlayer(&p, cfg, 600, 1) {
		t.Fatal("Player in mid-air should not be grounded")
	}
	if math.Abs(p.VY-0.24) > eps {
		t.Errorf("VY = %v, expected 0.24", p.VY)
	}
	if math.Abs(p.Y-300.24) > eps {
		t.Errorf("Y = %v, expected 300.24", p.Y)
	}

	// dt scales the step
	q := Player{X: 160, Y: 300, Radius: 18}
	stepPlayer(&q, cfg, 600, 2)
	if math.Abs(q.VY-0.48) > eps {
		t.Errorf("VY with dt=2 = %v, expected 0.48", q.VY)
	}
}

func TestStepPlayerFloorAndCeiling(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Physics

	p := Player{Y: 590, Radius: 18}
	if !stepPlayer(&p, cfg, 600, 1) {
		t.Error("Player crossing the floor should be grounded")
	}
	if p.Y != 582 {
		t.Errorf("Y = %v, expected clamp to 582", p.Y)
	}

	p = Player{Y: -99, VY: -5, Radius: 18}
	if stepPlayer(&p, cfg, 600, 1) {
		t.Error("Ceiling contact is not a crash")
	}
	if p.Y != cfg.Ceiling || p.VY != 0 {
		t.Errorf("Player = (%v, %v), expected stalled at ceiling %v", p.Y, p.VY, cfg.Ceiling)
	}
}

func TestStepPlayerRotationClamped(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Physics

	tests := []struct {
		vy       float64
		expected float64
	}{
		{0, 0.024},
		{30, math.Pi / 4},
		{-30, -math.Pi / 4},
	}

	for _, tc := range tests {
		p := Player{Y: 300, VY: tc.vy, Radius: 18}
		stepPlayer(&p, cfg, 1e6, 1)
		if math.Abs(p.Rotation-tc.expected) > 1e-6 {
			t.Errorf("vy=%v: Rotation = %v, expected %v", tc.vy, p.Rotation, tc.expected)
		}
	}
}

func TestApplyJumpOverridesVelocity(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Physics
	for _, vy := range []float64{-12, -5, 0, 3.3, 40} {
		p := Player{VY: vy}
		applyJump(&p, cfg)
		if p.VY != cfg.JumpImpulse {
			t.Errorf("VY after jump from %v = %v, expected %v", vy, p.VY, cfg.JumpImpulse)
		}
	}
}

func newTestSpawner(seed int64) *Spawner {
	cfg := config.DefaultRunnerConfig()
	return NewSpawner(cfg.Obstacles, cfg.Tokens, rand.New(rand.NewSource(seed)))
}

func TestSpawnerSeedPositions(t *testing.T) {
	s := newTestSpawner(1)
	w := &World{Width: 800, Height: 600}
	s.Seed(w)

	expected := []float64{800, 1220, 1640}
	if len(w.Obstacles) != len(expected) {
		t.Fatalf("Seeded %d obstacles, expected %d", len(w.Obstacles), len(expected))
	}
	for i, o := range w.Obstacles {
		if o.X != expected[i] {
			t.Errorf("Obstacle %d at x=%v, expected %v", i, o.X, expected[i])
		}
		if o.TopHeight < 50 || o.TopHeight > 380 || o.TopHeight != math.Floor(o.TopHeight) {
			t.Errorf("Obstacle %d TopHeight = %v, expected integer in [50, 380]", i, o.TopHeight)
		}
		if o.BottomY != o.TopHeight+170 {
			t.Errorf("Obstacle %d BottomY = %v, expected TopHeight+170", i, o.BottomY)
		}
		if o.Width != 60 || o.Passed {
			t.Errorf("Obstacle %d = %+v, expected width 60 and not passed", i, o)
		}
	}
}

func TestSpawnerTokensCenteredInGap(t *testing.T) {
	s := newTestSpawner(7)
	w := &World{Width: 800, Height: 600}
	for i := 0; i < 200; i++ {
		s.Spawn(w)
	}

	if len(w.Collectibles) == 0 || len(w.Collectibles) == len(w.Obstacles) {
		t.Fatalf("Spawned %d tokens for %d obstacles, expected a partial share", len(w.Collectibles), len(w.Obstacles))
	}

	byX := make(map[float64]Obstacle, len(w.Obstacles))
	for _, o := range w.Obstacles {
		byX[o.X+o.Width/2] = o
	}
	for _, c := range w.Collectibles {
		o, ok := byX[c.X]
		if !ok {
			t.Fatalf("Token at x=%v is not centered on any obstacle", c.X)
		}
		if c.Y != o.TopHeight+85 {
			t.Errorf("Token y = %v, expected gap midpoint %v", c.Y, o.TopHeight+85)
		}
		if c.Radius != 16 || c.Kind != KindToken || c.Collected {
			t.Errorf("Unexpected token %+v", c)
		}
		if c.FloatOffset < 0 || c.FloatOffset >= 2*math.Pi {
			t.Errorf("FloatOffset = %v, expected [0, 2π)", c.FloatOffset)
		}
	}
}

func TestSpawnerTopUp(t *testing.T) {
	tests := []struct {
		name     string
		lastX    float64
		spawned  bool
		expected float64
	}{
		{"buffer full", 700, false, 0},
		{"exactly one spacing", 380, false, 0},
		{"buffer short", 379, true, 800},
		{"far behind", -50, true, 800},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSpawner(3)
			w := &World{Width: 800, Height: 600, Obstacles: []Obstacle{{X: tc.lastX, Width: 60}}}
			if got := s.TopUp(w); got != tc.spawned {
				t.Fatalf("TopUp() = %v, expected %v", got, tc.spawned)
			}
			if tc.spawned && w.Obstacles[1].X != tc.expected {
				t.Errorf("New obstacle at x=%v, expected %v", w.Obstacles[1].X, tc.expected)
			}
		})
	}
}

func TestSpawnerAfterGrowingViewport(t *testing.T) {
	s := newTestSpawner(3)
	w := &World{Width: 800, Height: 600, Obstacles: []Obstacle{{X: 500, Width: 60}}}

	w.Width = 1400
	s.Spawn(w)

	// The new obstacle must never appear inside the visible area
	if got := w.Obstacles[1].X; got != 1400 {
		t.Errorf("Spawn after resize at x=%v, expected 1400", got)
	}
}

func TestSpawnerTinyViewportUsesMinHeight(t *testing.T) {
	s := newTestSpawner(3)
	w := &World{Width: 300, Height: 200}
	s.Spawn(w)
	if got := w.Obstacles[0].TopHeight; got != 50 {
		t.Errorf("TopHeight = %v, expected minHeight 50", got)
	}
}

func TestObstacleOrderingAcrossResizes(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	s := newTestSpawner(11)
	w := &World{Width: 800, Height: 600}
	s.Seed(w)

	widths := map[int]float64{300: 1400, 900: 420, 1500: 1000}
	for tick := 0; tick < 2500; tick++ {
		if nw, ok := widths[tick]; ok {
			w.Width = nw
		}
		s.TopUp(w)
		scroll(w, cfg.Physics.ScrollSpeed*1.3)
		prune(w, cfg.Obstacles.Cutoff, cfg.Tokens.Cutoff)

		for i := 1; i < len(w.Obstacles); i++ {
			d := w.Obstacles[i].X - w.Obstacles[i-1].X
			if d < cfg.Obstacles.Spacing-1e-6 {
				t.Fatalf("Tick %d: obstacles %d and %d are %v apart, expected >= %v", tick, i-1, i, d, cfg.Obstacles.Spacing)
			}
		}
	}
}

func TestPrune(t *testing.T) {
	w := &World{
		Obstacles: []Obstacle{
			{X: -170, Width: 60}, // right edge -110: gone
			{X: -160, Width: 60}, // right edge -100: kept
			{X: 200, Width: 60},
		},
		Collectibles: []Collectible{
			{X: -51},
			{X: -50},
			{X: 100, Collected: true},
			{X: 300},
		},
	}

	prune(w, -100, -50)

	if len(w.Obstacles) != 2 || w.Obstacles[0].X != -160 || w.Obstacles[1].X != 200 {
		t.Errorf("Obstacles after prune = %+v", w.Obstacles)
	}
	if len(w.Collectibles) != 2 || w.Collectibles[0].X != -50 || w.Collectibles[1].X != 300 {
		t.Errorf("Collectibles after prune = %+v", w.Collectibles)
	}
}

func TestObstacleVerticalWindow(t *testing.T) {
	o := Obstacle{X: 100, TopHeight: 200, BottomY: 370, Width: 60}

	tests := []struct {
		y        float64
		expected bool
	}{
		{217, true},
		{218, false},
		{285, false},
		{352, false},
		{353, true},
	}

	for _, tc := range tests {
		p := Player{X: 130, Y: tc.y, Radius: 18}
		if got := hitsObstacle(p, o); got != tc.expected {
			t.Errorf("y=%v: hitsObstacle() = %v, expected %v", tc.y, got, tc.expected)
		}
	}
}

func TestObstacleHorizontalOverlap(t *testing.T) {
	o := Obstacle{X: 100, TopHeight: 200, BottomY: 370, Width: 60}

	tests := []struct {
		x        float64
		expected bool
	}{
		{82, false}, // right edge touches the obstacle
		{83, true},
		{177, true},
		{178, false}, // left edge touches the obstacle's right edge
	}

	for _, tc := range tests {
		p := Player{X: tc.x, Y: 0, Radius: 18}
		if got := hitsObstacle(p, o); got != tc.expected {
			t.Errorf("x=%v: hitsObstacle() = %v, expected %v", tc.x, got, tc.expected)
		}
	}
}

func TestPassScoredOnce(t *testing.T) {
	w := &World{
		Player:    Player{X: 200, Y: 100, Radius: 18},
		Obstacles: []Obstacle{{X: 100, TopHeight: 200, BottomY: 370, Width: 60}},
	}

	if res := resolveObstacles(w); res.passed != 1 || res.crashed {
		t.Fatalf("First resolve = %+v, expected one pass and no crash", res)
	}
	if !w.Obstacles[0].Passed {
		t.Error("Obstacle should be marked passed")
	}
	for i := 0; i < 5; i++ {
		if res := resolveObstacles(w); res.passed != 0 {
			t.Fatalf("Resolve %d awarded %d passes again", i, res.passed)
		}
	}
}

func TestPassIndependentOfCollision(t *testing.T) {
	// Player overlapping the next obstacle's wall still clears the previous one
	w := &World{
		Player: Player{X: 200, Y: 100, Radius: 18},
		Obstacles: []Obstacle{
			{X: 100, TopHeight: 200, BottomY: 370, Width: 60},
			{X: 190, TopHeight: 200, BottomY: 370, Width: 60},
		},
	}

	res := resolveObstacles(w)
	if !res.crashed || res.passed != 1 {
		t.Errorf("resolveObstacles() = %+v, expected crash and one pass", res)
	}
}

func TestCollectDistanceThreshold(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		expected bool
	}{
		{"exactly touching", 34, false},
		{"just inside", 33.999, true},
		{"overlapping", 10, true},
		{"apart", 60, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := &World{
				Player:       Player{X: 0, Y: 0, Radius: 18},
				Collectibles: []Collectible{{X: tc.x, Y: 0, Radius: 16}},
			}
			hits := resolveCollectibles(w, 0.1, 5, nil)
			if got := len(hits) == 1; got != tc.expected {
				t.Errorf("collected = %v, expected %v", got, tc.expected)
			}
			if w.Collectibles[0].Collected != tc.expected {
				t.Errorf("Collected flag = %v, expected %v", w.Collectibles[0].Collected, tc.expected)
			}
		})
	}
}

func TestCollectUsesAnimatedPosition(t *testing.T) {
	// Resting center is 30 away, but the bob lifts it to 35
	w := &World{
		Player:       Player{X: 0, Y: 0, Radius: 18},
		Collectibles: []Collectible{{X: 0, Y: 30, Radius: 16, FloatOffset: math.Pi / 2}},
	}
	if hits := resolveCollectibles(w, 0.1, 5, nil); len(hits) != 0 {
		t.Errorf("Token bobbed out of reach should not be collected, got %v", hits)
	}

	w.Collectibles[0].FloatOffset = -math.Pi / 2
	hits := resolveCollectibles(w, 0.1, 5, nil)
	if len(hits) != 1 {
		t.Fatal("Token bobbed into reach should be collected")
	}
	if math.Abs(hits[0].Y-25) > 1e-6 {
		t.Errorf("Hit position y = %v, expected animated 25", hits[0].Y)
	}

	// Already collected tokens never trigger again
	if again := resolveCollectibles(w, 0.1, 5, nil); len(again) != 0 {
		t.Error("Collected token triggered twice")
	}
}

func TestParticleBurstAndDecay(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Particles
	ps := NewParticleSystem(cfg, rand.New(rand.NewSource(5)))
	origin := core.Vec{X: 100, Y: 100}

	ps.Burst(origin, core.ColorPurple, 15)
	if ps.Len() != 15 {
		t.Fatalf("Burst produced %d particles, expected 15", ps.Len())
	}
	for _, p := range ps.Items() {
		if p.Life != 1 || p.Color != core.ColorPurple || p.Pos != origin {
			t.Errorf("Unexpected fresh particle %+v", p)
		}
		if s := p.Vel.Len(); s < cfg.MinSpeed-eps || s > cfg.MaxSpeed+eps {
			t.Errorf("Speed %v outside [%v, %v]", s, cfg.MinSpeed, cfg.MaxSpeed)
		}
		if p.Size < cfg.MinSize || p.Size > cfg.MaxSize {
			t.Errorf("Size %v outside [%v, %v]", p.Size, cfg.MinSize, cfg.MaxSize)
		}
	}

	before := ps.Items()[0]
	ps.Step(1)
	after := ps.Items()[0]
	if after.Pos != before.Pos.Add(before.Vel) {
		t.Errorf("Position = %v, expected %v", after.Pos, before.Pos.Add(before.Vel))
	}
	if math.Abs(after.Vel.Y-(before.Vel.Y+cfg.Gravity)) > eps {
		t.Errorf("Vel.Y = %v, expected gravity applied", after.Vel.Y)
	}
	if math.Abs(after.Life-0.98) > eps {
		t.Errorf("Life = %v, expected 0.98", after.Life)
	}

	for i := 0; i < 47; i++ {
		ps.Step(1)
	}
	if ps.Len() != 15 {
		t.Errorf("Particles expired early: %d left after 48 steps", ps.Len())
	}
	for i := 0; i < 3; i++ {
		ps.Step(1)
	}
	if ps.Len() != 0 {
		t.Errorf("%d particles alive after life reached zero", ps.Len())
	}
}

func TestParticleClear(t *testing.T) {
	ps := NewParticleSystem(config.DefaultRunnerConfig().Particles, rand.New(rand.NewSource(5)))
	ps.Burst(core.Vec{}, core.ColorWhite, 4)
	ps.Clear()
	if ps.Len() != 0 {
		t.Errorf("Len() = %d after Clear, expected 0", ps.Len())
	}
}

func TestScoreTracker(t *testing.T) {
	st := NewScoreTracker(6)

	if st.Pass(1) {
		t.Error("Score 1 should not beat high score 6")
	}
	if st.Collect(5) {
		t.Error("Score 6 only ties high score 6")
	}
	if !st.Pass(1) {
		t.Error("Score 7 should raise the high score")
	}

	got := st.Stats()
	expected := Stats{Score: 7, HighScore: 7, TokensCollected: 1}
	if got != expected {
		t.Errorf("Stats() = %+v, expected %+v", got, expected)
	}

	st.Reset()
	if got := st.Stats(); got != (Stats{HighScore: 7}) {
		t.Errorf("Stats() after Reset = %+v, expected only the high score kept", got)
	}
}

func TestScoreTrackerNegativeHighScore(t *testing.T) {
	if got := NewScoreTracker(-3).Stats().HighScore; got != 0 {
		t.Errorf("HighScore = %d, expected 0", got)
	}
}
