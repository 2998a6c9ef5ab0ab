package domain

import (
	"reflect"
	"testing"
)

func TestDisplayLabel(t *testing.T) {
	tests := []struct {
		name      string
		selection []Item
		want      string
	}{
		{"empty", nil, ""},
		{"one", sample[:1], "Education 🎓"},
		{"two", sample[:2], "Education 🎓 , Yeeeah, science! ⚗️"},
		{"three", sample[:3], "Education 🎓 , Yeeeah, science! ⚗️  +1"},
		{"five", sample[:5], "Education 🎓 , Yeeeah, science! ⚗️  +3"},
		{"selection order wins", []Item{sample[4], sample[0]}, "Games 🎮 , Education 🎓"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayLabel(tt.selection); got != tt.want {
				t.Errorf("DisplayLabel = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToggle(t *testing.T) {
	t.Run("appends absent item", func(t *testing.T) {
		got := Values(Toggle(sample[:2], sample[3]))
		if want := []string{"education", "science", "sport"}; !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("removes present item and keeps order", func(t *testing.T) {
		got := Values(Toggle(sample[:4], sample[1]))
		if want := []string{"education", "art", "sport"}; !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("removes only the first occurrence", func(t *testing.T) {
		dup := []Item{sample[0], sample[1], sample[0]}
		got := Values(Toggle(dup, sample[0]))
		if want := []string{"science", "education"}; !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("toggle on empty selection", func(t *testing.T) {
		got := Toggle(nil, sample[2])
		if len(got) != 1 || got[0] != sample[2] {
			t.Errorf("got %v, want only %v", got, sample[2])
		}
	})

	t.Run("never mutates input", func(t *testing.T) {
		in := Clone(sample[:3])
		_ = Toggle(in, sample[0])
		_ = Toggle(in, sample[5])
		if !reflect.DeepEqual(in, sample[:3]) {
			t.Errorf("input changed to %v", in)
		}
	})

	t.Run("identity is the whole item", func(t *testing.T) {
		lookalike := Item{Value: "education", Label: "Something else"}
		if got := Toggle(sample[:1], lookalike); len(got) != 2 {
			t.Errorf("expected lookalike appended, got %v", got)
		}
	})
}

func TestContainsAndIndexOf(t *testing.T) {
	if !Contains(sample, sample[3]) {
		t.Error("expected sport in sample")
	}
	if Contains(sample[:2], sample[3]) {
		t.Error("expected sport missing from the first two")
	}
	if got := IndexOf(sample, sample[2]); got != 2 {
		t.Errorf("IndexOf = %d, want 2", got)
	}
	if got := IndexOf(nil, sample[2]); got != -1 {
		t.Errorf("IndexOf(nil) = %d, want -1", got)
	}
}

func TestLabels(t *testing.T) {
	if got, want := Labels(sample[2:4]), []string{"Art 🎭", "Sport ⚽️"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
