package shadercontract

import "testing"

type stubShader struct{ n int }

func (s stubShader) CaptureInto(a *Arena) Handle {
	return a.Put(s)
}

func TestArenaPutGetIndependentCopies(t *testing.T) {
	var a Arena
	h1 := stubShader{n: 1}.CaptureInto(&a)
	h2 := stubShader{n: 2}.CaptureInto(&a)

	got1 := a.Get(h1).(stubShader)
	got2 := a.Get(h2).(stubShader)

	if got1.n != 1 || got2.n != 2 {
		t.Fatalf("got %+v, %+v, want n=1 and n=2", got1, got2)
	}
	if a.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", a.Len())
	}
}

func TestArenaResetClearsButKeepsCapacity(t *testing.T) {
	var a Arena
	stubShader{n: 1}.CaptureInto(&a)
	stubShader{n: 2}.CaptureInto(&a)
	a.Reset()
	if a.Len() != 0 {
		t.Fatalf("Len() after Reset = %d, want 0", a.Len())
	}
	h := stubShader{n: 3}.CaptureInto(&a)
	if got := a.Get(h).(stubShader); got.n != 3 {
		t.Fatalf("got %+v after reuse, want n=3", got)
	}
}
