package joypad

import "testing"

func TestNewJoypadAllButtonsReleased(t *testing.T) {
	j := New()
	j.Write(0x10)
	if j.Read() != 0x0F {
		t.Fatalf("dpad read on a fresh Joypad = 0x%02X, want 0x0F", j.Read())
	}
	j.Write(0x20)
	if j.Read() != 0x0F {
		t.Fatalf("buttons read on a fresh Joypad = 0x%02X, want 0x0F", j.Read())
	}
}

func TestReadDispatchesOnSelectedLine(t *testing.T) {
	j := New()
	j.Write(0x10)
	j.Press(Right)
	if got := j.Read(); got&0x01 != 0 {
		t.Fatalf("dpad bit 0 should be clear after pressing Right, got 0x%02X", got)
	}

	j.Write(0x20)
	if got := j.Read(); got != 0x0F {
		t.Fatalf("selecting the buttons line should not reflect dpad state, got 0x%02X", got)
	}

	j.Write(0x30)
	if got := j.Read(); got != 0x0F {
		t.Fatalf("neither line selected = 0x%02X, want 0x0F", got)
	}
}

func TestPressAndReleaseEachKey(t *testing.T) {
	keys := []struct {
		key  Key
		line uint8
		bit  uint8
	}{
		{Right, 0x10, 0x01},
		{Left, 0x10, 0x02},
		{Up, 0x10, 0x04},
		{Down, 0x10, 0x08},
		{A, 0x20, 0x01},
		{B, 0x20, 0x02},
		{Select, 0x20, 0x04},
		{Start, 0x20, 0x08},
	}

	for _, tc := range keys {
		j := New()
		j.Write(tc.line)
		j.Press(tc.key)
		if got := j.Read(); got&tc.bit != 0 {
			t.Fatalf("key %d: bit 0x%02X should be clear after Press, got 0x%02X", tc.key, tc.bit, got)
		}
		j.Release(tc.key)
		if got := j.Read(); got&tc.bit == 0 {
			t.Fatalf("key %d: bit 0x%02X should be set after Release, got 0x%02X", tc.key, tc.bit, got)
		}
	}
}

func TestPressReportsFallingEdgeOnlyForTheSelectedLine(t *testing.T) {
	j := New()
	j.Write(0x20) // buttons selected

	if edge := j.Press(Right); edge {
		t.Fatal("pressing a dpad key while the buttons line is selected must not report an edge")
	}

	if edge := j.Press(A); !edge {
		t.Fatal("pressing a buttons key while the buttons line is selected must report an edge")
	}
}

func TestPressReportsEdgeOnlyOnFirstKeyDown(t *testing.T) {
	j := New()
	j.Write(0x10)

	if edge := j.Press(Right); !edge {
		t.Fatal("the first key down from all-released should be a falling edge")
	}
	if edge := j.Press(Left); edge {
		t.Fatal("a second key down while another is already held must not re-report an edge")
	}
}
