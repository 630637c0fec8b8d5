package sparse

import "testing"

func TestMatrix1(t *testing.T) {
	M := NewIntMatrix(10, 10, DefaultNullValue)
	if M.M() != 10 || M.N() != 10 {
		t.Errorf("Expected matrix to be of size 10 x 10")
	}
	M.Set(2, 3, 4711)
	if v := M.Value(2, 3); v != 4711 {
		t.Errorf("Expected M(2,3) to be 4711, is %d", v)
	}
	if v := M.Value(3, 2); v != M.NullValue() {
		t.Errorf("Expected M(3,2) to be the null-value, is %d", v)
	}
	if M.ValueCount() != 1 {
		t.Errorf("Expected value count of 1, is %d", M.ValueCount())
	}
}

func TestMatrix2(t *testing.T) {
	M := NewIntMatrix(5, 5, DefaultNullValue)
	M.Set(4, 4, 1)
	M.Set(0, 0, 2)
	M.Set(2, 2, 3)
	M.Set(2, 2, 4) // overwrite
	if M.ValueCount() != 3 {
		t.Errorf("Expected value count of 3, is %d", M.ValueCount())
	}
	if v := M.Value(2, 2); v != 4 {
		t.Errorf("Expected M(2,2) to be overwritten with 4, is %d", v)
	}
	if v := M.Value(0, 0); v != 2 {
		t.Errorf("Expected M(0,0) to be 2, is %d", v)
	}
	if v := M.Value(4, 4); v != 1 {
		t.Errorf("Expected M(4,4) to be 1, is %d", v)
	}
}
