package movement

import (
	"math"
	"testing"

	"go-shmup/pkg/utils"
)

const dt = 1.0 / 60.0

type fakePlayer struct {
	pos   utils.Vec2
	alive bool
}

func (p *fakePlayer) PlayerPosition() (utils.Vec2, bool) { return p.pos, p.alive }

func approx(a, b, eps float64) bool { return math.Abs(a-b) <= eps }

func TestStraightDown(t *testing.T) {
	var m Mover
	start := utils.V(1, 5)
	if err := m.Configure(StraightDown{Speed: 3}, start); err != nil {
		t.Fatal(err)
	}
	pos := start
	for i := 0; i < 60; i++ {
		pos, _ = m.Step(pos, dt)
	}
	if !approx(pos.X, 1, 1e-12) || !approx(pos.Y, 2, 1e-9) {
		t.Errorf("after 1s at speed 3: %v, want (1, 2)", pos)
	}
}

func TestSineHorizontalVelocity(t *testing.T) {
	d := Sine{Speed: 2, Amplitude: 1.4, Frequency: 2.3, Phase: 0.7}
	var m Mover
	start := utils.V(0, 6)
	if err := m.Configure(d, start); err != nil {
		t.Fatal(err)
	}
	pos := start
	elapsed := 0.0
	for i := 0; i < 90; i++ {
		prev := pos
		pos, _ = m.Step(pos, dt)
		elapsed += dt
		mid := elapsed - dt/2
		want := d.Amplitude * d.Frequency * math.Cos(d.Frequency*mid+d.Phase)
		got := (pos.X - prev.X) / dt
		if i > 0 && !approx(got, want, 1e-3) {
			t.Fatalf("step %d: horizontal velocity %v, want %v", i, got, want)
		}
		if !approx(prev.Y-pos.Y, d.Speed*dt, 1e-12) {
			t.Fatalf("step %d: vertical step %v", i, prev.Y-pos.Y)
		}
	}
}

func TestDiveFreezesDirection(t *testing.T) {
	player := &fakePlayer{pos: utils.V(3, -4), alive: true}
	var m Mover
	start := utils.V(0, 4)
	if err := m.Configure(Dive{ApproachSpeed: 3, DiveSpeed: 7, Delay: 0.5, Target: player}, start); err != nil {
		t.Fatal(err)
	}

	pos := start
	for i := 0; i < 20; i++ {
		pos, _ = m.Step(pos, dt)
	}
	if m.Dived() {
		t.Fatal("dived before the delay expired")
	}
	if !approx(pos.X, 0, 1e-12) {
		t.Errorf("approach drifted sideways: %v", pos)
	}

	for !m.Dived() {
		pos, _ = m.Step(pos, dt)
	}
	dir := m.DiveDirection()
	if !approx(dir.Len(), 1, 1e-9) {
		t.Fatalf("dive direction not normalized: %v", dir)
	}

	player.pos = utils.V(-10, 10)
	before := pos
	pos, _ = m.Step(pos, dt)
	step := pos.Sub(before)
	if m.DiveDirection() != dir {
		t.Fatalf("direction changed after the player moved: %v -> %v", dir, m.DiveDirection())
	}
	if !approx(step.X, dir.X*7*dt, 1e-12) || !approx(step.Y, dir.Y*7*dt, 1e-12) {
		t.Errorf("dive step %v does not follow frozen direction %v", step, dir)
	}
}

func TestDiveWithoutTargetKeepsApproaching(t *testing.T) {
	player := &fakePlayer{alive: false}
	for _, target := range []PlayerLocator{nil, player} {
		var m Mover
		if err := m.Configure(Dive{ApproachSpeed: 2, DiveSpeed: 7, Delay: 0.1, Target: target}, utils.V(0, 0)); err != nil {
			t.Fatal(err)
		}
		pos := utils.V(0, 0)
		for i := 0; i < 60; i++ {
			pos, _ = m.Step(pos, dt)
		}
		if m.Dived() || !approx(pos.Y, -2, 1e-9) {
			t.Errorf("target %v: dived=%v pos=%v", target, m.Dived(), pos)
		}
	}
}

func TestArcAngularRate(t *testing.T) {
	for _, clockwise := range []bool{false, true} {
		d := Arc{Center: utils.V(0, 5), Radius: 2.5, Clockwise: clockwise, StartAngle: 0, LinearSpeed: 4}
		var m Mover
		start := d.Center.Add(utils.V(d.Radius, 0))
		if err := m.Configure(d, start); err != nil {
			t.Fatal(err)
		}
		pos, _ := m.Step(start, dt)

		got := math.Atan2(pos.Y-d.Center.Y, pos.X-d.Center.X)
		want := d.LinearSpeed / d.Radius * dt
		if clockwise {
			want = -want
		}
		if !approx(got, want, 1e-9) {
			t.Errorf("clockwise=%v: angle after one step %v, want %v", clockwise, got, want)
		}
		if !approx(pos.Dist(d.Center), d.Radius, 1e-9) {
			t.Errorf("clockwise=%v: left the circle, r=%v", clockwise, pos.Dist(d.Center))
		}
	}
}

func TestArcDoneAfterHalfCircle(t *testing.T) {
	d := Arc{Center: utils.V(0, 0), Radius: 1, StartAngle: math.Pi, LinearSpeed: math.Pi}
	var m Mover
	pos := utils.V(-1, 0)
	if err := m.Configure(d, pos); err != nil {
		t.Fatal(err)
	}
	steps := 0
	for !m.Done() && steps < 1000 {
		pos, _ = m.Step(pos, dt)
		steps++
	}
	if steps < 59 || steps > 61 {
		t.Errorf("half circle at pi rad/s took %d steps, want about 60", steps)
	}
	if !approx(pos.X, 1, 0.02) {
		t.Errorf("counter-clockwise sweep from the left should end on the right, got %v", pos)
	}
}

func TestFormationFollowsCenter(t *testing.T) {
	center := NewFormationCenter(utils.V(0, 6), utils.V(0, -1), 0, 0)
	var m Mover
	if err := m.Configure(InFormation{Offset: utils.V(0.5, 0.8), Center: center}, utils.V(0.5, 6.8)); err != nil {
		t.Fatal(err)
	}
	if !m.InFormation() {
		t.Fatal("InFormation() = false")
	}
	pos := utils.V(0.5, 6.8)
	for i := 0; i < 30; i++ {
		center.Advance(dt)
		pos, _ = m.Step(pos, dt)
	}
	want := center.Position().Add(utils.V(0.5, 0.8))
	if !approx(pos.X, want.X, 1e-12) || !approx(pos.Y, want.Y, 1e-12) {
		t.Errorf("member at %v, want %v", pos, want)
	}
	if !approx(center.Position().Y, 5.5, 1e-9) {
		t.Errorf("center at %v after 0.5s", center.Position())
	}
}

func TestConfigureRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		d    Descriptor
	}{
		{"nil", nil},
		{"zero radius arc", Arc{Radius: 0, LinearSpeed: 1}},
		{"formation without center", InFormation{Offset: utils.V(1, 0)}},
		{"negative speed", StraightDown{Speed: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Mover
			if err := m.Configure(tt.d, utils.V(0, 0)); err == nil {
				t.Fatal("expected an error")
			}
			if m.Configured() {
				t.Error("mover should stay idle")
			}
		})
	}
}
