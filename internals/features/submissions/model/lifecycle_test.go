package model

import "testing"

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"pending ke processing", StatusPending, StatusProcessing, true},
		{"pending ke completed", StatusPending, StatusCompleted, true},
		{"pending ke rejected", StatusPending, StatusRejected, true},
		{"processing ke completed", StatusProcessing, StatusCompleted, true},
		{"processing ke rejected", StatusProcessing, StatusRejected, true},
		{"processing mundur ke pending", StatusProcessing, StatusPending, false},
		{"completed terminal", StatusCompleted, StatusProcessing, false},
		{"rejected terminal", StatusRejected, StatusPending, false},
		{"completed ke rejected", StatusCompleted, StatusRejected, false},
		{"self-transition pending", StatusPending, StatusPending, true},
		{"self-transition completed", StatusCompleted, StatusCompleted, true},
		{"status asal tidak dikenal", "draft", StatusPending, false},
		{"status tujuan tidak dikenal", StatusPending, "archived", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(StatusPending) || IsTerminal(StatusProcessing) {
		t.Error("pending/processing tidak boleh terminal")
	}
	if !IsTerminal(StatusCompleted) || !IsTerminal(StatusRejected) {
		t.Error("completed/rejected harus terminal")
	}
}

func TestValidType(t *testing.T) {
	for _, typ := range []string{TypeNA, TypeKTP, TypeKK, TypeUsaha, TypeDomisili, TypeTidakSengketa, TypePengantar, TypeLainnya} {
		if !ValidType(typ) {
			t.Errorf("ValidType(%q) = false", typ)
		}
	}
	if ValidType("sim") {
		t.Error(`ValidType("sim") = true, jenis ini tidak dikenal`)
	}
}
