package pool

import "testing"

func TestMatrixAtSet(t *testing.T) {
	m := NewMatrix(3, 4)
	if m.Rows() != 3 || m.Cols() != 4 {
		t.Fatalf("dimensions = %dx%d, want 3x4", m.Rows(), m.Cols())
	}
	m.Set(2, 3, 7)
	m.Set(1, 0, 5)
	if got := m.At(2, 3); got != 7 {
		t.Errorf("At(2, 3) = %d, want 7", got)
	}
	if got := m.Row(1)[0]; got != 5 {
		t.Errorf("Row(1)[0] = %d, want 5", got)
	}
}

func TestMatrixPoolReturnsZeroedMatrix(t *testing.T) {
	mp := NewMatrixPool(0)

	m := mp.Get(5, 5)
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			m.Set(i, j, i+j+1)
		}
	}
	mp.Put(m)

	again := mp.Get(3, 2)
	if again.Rows() != 3 || again.Cols() != 2 {
		t.Fatalf("dimensions = %dx%d, want 3x2", again.Rows(), again.Cols())
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			if v := again.At(i, j); v != 0 {
				t.Fatalf("At(%d, %d) = %d, want 0", i, j, v)
			}
		}
	}
}

func TestMatrixPoolDropsOversized(t *testing.T) {
	mp := NewMatrixPool(10)
	m := mp.Get(4, 4)
	// Must not panic and must not retain the oversized matrix.
	mp.Put(m)
	mp.Put(nil)
}
