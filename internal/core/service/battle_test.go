package service

import (
	"testing"

	"github.com/pokearena/teambuilder/internal/core/domain"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		owner      domain.Stats
		rival      domain.Stats
		wantWinner domain.Winner
		wantMargin int
	}{
		{"owner ahead", domain.Stats{HP: 900}, domain.Stats{HP: 850}, domain.WinnerOwner, 50},
		{"rival ahead", domain.Stats{Attack: 100, Speed: 20}, domain.Stats{SpDef: 200}, domain.WinnerRival, 80},
		{"tie on sums", domain.Stats{HP: 300, Attack: 300}, domain.Stats{Defense: 600}, domain.WinnerTie, 0},
		{"zero", domain.Stats{}, domain.Stats{}, domain.WinnerTie, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.owner, tt.rival)
			if got.Winner != tt.wantWinner || got.Margin != tt.wantMargin {
				t.Fatalf("Resolve = %+v, want winner %v margin %d", got, tt.wantWinner, tt.wantMargin)
			}
		})
	}
}

func TestResolve_Symmetric(t *testing.T) {
	a := domain.Stats{HP: 120, Attack: 80, Defense: 95, SpAtk: 60, SpDef: 70, Speed: 110}
	b := domain.Stats{HP: 90, Attack: 130, Defense: 60, SpAtk: 100, SpDef: 55, Speed: 80}

	ab, ba := Resolve(a, b), Resolve(b, a)
	if ab.Margin != ba.Margin {
		t.Fatalf("margins differ: %d vs %d", ab.Margin, ba.Margin)
	}
	flipped := map[domain.Winner]domain.Winner{
		domain.WinnerOwner: domain.WinnerRival,
		domain.WinnerRival: domain.WinnerOwner,
		domain.WinnerTie:   domain.WinnerTie,
	}
	if flipped[ab.Winner] != ba.Winner {
		t.Fatalf("winners not mirrored: %v vs %v", ab.Winner, ba.Winner)
	}
}

func TestStatAxes(t *testing.T) {
	owner := domain.Stats{HP: 1, Attack: 2, Defense: 3, SpAtk: 4, SpDef: 5, Speed: 6}
	rival := domain.Stats{HP: 10, Attack: 20, Defense: 30, SpAtk: 40, SpDef: 50, Speed: 60}

	axes := StatAxes(owner, rival)
	wantLabels := []string{"HP", "Attack", "Defense", "Speed", "Sp. Atk", "Sp. Def"}
	wantOwner := []int{1, 2, 3, 6, 4, 5}
	if len(axes) != len(wantLabels) {
		t.Fatalf("expected %d axes, got %d", len(wantLabels), len(axes))
	}
	for i, a := range axes {
		if a.Label != wantLabels[i] || a.Owner != wantOwner[i] || a.Rival != wantOwner[i]*10 || a.Max != domain.StatAxisMax {
			t.Fatalf("axis %d = %+v", i, a)
		}
	}
}
