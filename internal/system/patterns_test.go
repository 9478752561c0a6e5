package system

import (
	"math"
	"testing"

	"go-shmup/internal/camera"
	"go-shmup/internal/defs"
	"go-shmup/internal/movement"
	"go-shmup/internal/utils"
)

func TestPatternFor(t *testing.T) {
	want := []Pattern{PatternLine, PatternSineArc, PatternDive, PatternColumns, PatternPincer, PatternBoss}
	for wave := 1; wave <= 18; wave++ {
		if got := PatternFor(wave); got != want[(wave-1)%6] {
			t.Errorf("PatternFor(%d) = %v, want %v", wave, got, want[(wave-1)%6])
		}
	}
	if PatternFor(0) != PatternLine {
		t.Errorf("PatternFor(0) = %v", PatternFor(0))
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		wave, perTier, want int
	}{
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{10, 5, 2},
		{11, 5, 3},
		{3, 1, 3},
		{4, 0, 4},
		{0, 5, 1},
	}
	for _, tt := range tests {
		if got := TierFor(tt.wave, tt.perTier); got != tt.want {
			t.Errorf("TierFor(%d, %d) = %d, want %d", tt.wave, tt.perTier, got, tt.want)
		}
	}
}

func TestFitGrid(t *testing.T) {
	tests := []struct {
		rows, cols, avail int
		wantR, wantC      int
	}{
		{2, 5, 10, 2, 5},
		{2, 5, 30, 2, 5},
		{2, 5, 7, 1, 5},
		{2, 5, 3, 1, 3},
		{3, 4, 8, 2, 4},
		{2, 5, 0, 0, 0},
	}
	for _, tt := range tests {
		r, c := fitGrid(tt.rows, tt.cols, tt.avail)
		if r != tt.wantR || c != tt.wantC {
			t.Errorf("fitGrid(%d, %d, %d) = %d, %d, want %d, %d", tt.rows, tt.cols, tt.avail, r, c, tt.wantR, tt.wantC)
		}
	}
}

func planContext(wave, available int) PlanContext {
	return PlanContext{
		Wave:      wave,
		Available: available,
		Viewport:  camera.NewOrtho(5, 0.5625),
		Tuning:    defs.DefaultWaveTuning(),
		Rng:       utils.NewPRNGService(7),
	}
}

func TestBuildPlanCounts(t *testing.T) {
	tests := []struct {
		pattern   Pattern
		wave      int
		available int
		requested int
		count     int
		bursts    int
	}{
		{PatternLine, 1, 30, 7, 7, 1},
		{PatternLine, 1, 3, 7, 3, 1},
		{PatternLine, 20, 30, 14, 14, 1},
		{PatternSineArc, 2, 30, 10, 10, 2},
		{PatternSineArc, 2, 7, 10, 5, 1},
		{PatternDive, 3, 30, 12, 12, 3},
		{PatternColumns, 4, 30, 8, 8, 1},
		{PatternPincer, 5, 30, 6, 6, 3},
		{PatternPincer, 5, 5, 6, 4, 2},
		{PatternBoss, 6, 30, 0, 0, 0},
	}
	for _, tt := range tests {
		plan := BuildPlan(tt.pattern, planContext(tt.wave, tt.available))
		if plan.Pattern != tt.pattern {
			t.Errorf("%v: plan pattern %v", tt.pattern, plan.Pattern)
		}
		if plan.Requested != tt.requested || plan.Count() != tt.count || len(plan.Bursts) != tt.bursts {
			t.Errorf("%v wave %d avail %d: requested %d count %d bursts %d, want %d %d %d",
				tt.pattern, tt.wave, tt.available, plan.Requested, plan.Count(), len(plan.Bursts),
				tt.requested, tt.count, tt.bursts)
		}
		if plan.Count() > tt.available {
			t.Errorf("%v: plan of %d exceeds %d available", tt.pattern, plan.Count(), tt.available)
		}
	}
}

func TestBuildPlanWithoutViewport(t *testing.T) {
	ctx := planContext(1, 30)
	ctx.Viewport = nil
	if plan := BuildPlan(PatternLine, ctx); plan.Count() != 0 {
		t.Fatalf("plan without viewport has %d enemies", plan.Count())
	}
}

func TestLineSpreadsAboveScreen(t *testing.T) {
	ctx := planContext(1, 30)
	plan := BuildPlan(PatternLine, ctx)
	orders := plan.Bursts[0].Orders
	for i, o := range orders {
		v := ctx.Viewport.WorldToViewport(o.Position)
		if v.Y <= 1 {
			t.Errorf("order %d spawns on screen at %v", i, v)
		}
		if i > 0 && o.Position.X <= orders[i-1].Position.X {
			t.Errorf("order %d not left to right", i)
		}
		if o.Motion.(movement.StraightDown).Speed <= 0 {
			t.Errorf("order %d has no speed", i)
		}
	}
}

func TestSineRowsDiffer(t *testing.T) {
	plan := BuildPlan(PatternSineArc, planContext(2, 30))
	a := plan.Bursts[0].Orders[0].Motion.(movement.Sine)
	b := plan.Bursts[1].Orders[0].Motion.(movement.Sine)
	if b.Amplitude <= a.Amplitude || b.Frequency <= a.Frequency {
		t.Fatalf("second row %+v not wider than first %+v", b, a)
	}
	if plan.Bursts[0].Delay != 0 || plan.Bursts[1].Delay <= 0 {
		t.Fatalf("row delays %v, %v", plan.Bursts[0].Delay, plan.Bursts[1].Delay)
	}
}

func TestColumnsShareFormation(t *testing.T) {
	plan := BuildPlan(PatternColumns, planContext(4, 30))
	if plan.Formation == nil {
		t.Fatal("no formation center")
	}
	for _, o := range plan.Bursts[0].Orders {
		f, ok := o.Motion.(movement.InFormation)
		if !ok || f.Center != plan.Formation {
			t.Fatalf("order not bound to the plan formation: %+v", o.Motion)
		}
		if o.Position.Sub(plan.Formation.Position().Add(f.Offset)).Len() > 1e-9 {
			t.Fatalf("order spawns off its slot")
		}
	}
}

func TestPincerPairsMirror(t *testing.T) {
	plan := BuildPlan(PatternPincer, planContext(5, 30))
	for i, b := range plan.Bursts {
		left := b.Orders[0].Motion.(movement.Arc)
		right := b.Orders[1].Motion.(movement.Arc)
		if left.Clockwise || !right.Clockwise {
			t.Errorf("pair %d: directions %v/%v", i, left.Clockwise, right.Clockwise)
		}
		if left.Radius != right.Radius || left.Center != right.Center {
			t.Errorf("pair %d: arcs differ %+v %+v", i, left, right)
		}
		if math.Abs(b.Orders[0].Position.X+b.Orders[1].Position.X-2*left.Center.X) > 1e-9 {
			t.Errorf("pair %d not mirrored", i)
		}
		if i > 0 && left.Radius >= plan.Bursts[i-1].Orders[0].Motion.(movement.Arc).Radius {
			t.Errorf("pair %d radius does not shrink", i)
		}
	}
}
