package rules

import "testing"

func TestNextStateSurvival(t *testing.T) {
	for neighbours := 0; neighbours <= 8; neighbours++ {
		want := neighbours == 2 || neighbours == 3
		if got := NextState(true, neighbours); got != want {
			t.Errorf("NextState(alive, %d) = %v, want %v", neighbours, got, want)
		}
	}
}

func TestNextStateBirth(t *testing.T) {
	for neighbours := 0; neighbours <= 8; neighbours++ {
		want := neighbours == 3
		if got := NextState(false, neighbours); got != want {
			t.Errorf("NextState(dead, %d) = %v, want %v", neighbours, got, want)
		}
	}
}
