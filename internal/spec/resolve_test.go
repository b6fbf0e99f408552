package spec

import "testing"

func doc(file, version string) *Document {
	return &Document{File: file, Version: version, Endpoints: map[EndpointKey]Endpoint{}}
}

func TestResolveLowerVersionIsBaseline(t *testing.T) {
	older := doc("b.yaml", "1.2.0")
	newer := doc("a.yaml", "1.3.0")

	for _, args := range [][2]*Document{{older, newer}, {newer, older}} {
		pair, err := Resolve(args[0], args[1])
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if pair.Baseline != older || pair.Candidate != newer {
			t.Errorf("Resolve(%s, %s): baseline = %s, want %s",
				args[0].File, args[1].File, pair.Baseline.File, older.File)
		}
	}
}

func TestResolveEqualVersionsTiebreakByPath(t *testing.T) {
	a := doc("aaa.yaml", "1.0.0")
	b := doc("bbb.yaml", "1.0.0")

	p1, err := Resolve(a, b)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	p2, err := Resolve(b, a)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if p1.Baseline != p2.Baseline || p1.Candidate != p2.Candidate {
		t.Error("equal versions must resolve identically regardless of argument order")
	}
	if p1.Baseline != a {
		t.Errorf("baseline = %s, want lexically first path aaa.yaml", p1.Baseline.File)
	}
}

func TestResolveMajorBeatsMinor(t *testing.T) {
	v1 := doc("x.yaml", "2.0.0")
	v2 := doc("y.yaml", "1.9.9")

	pair, err := Resolve(v1, v2)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if pair.Baseline != v2 {
		t.Errorf("baseline = %s, want 1.9.9 document", pair.Baseline.Version)
	}
}

func TestResolveInvalidVersion(t *testing.T) {
	_, err := Resolve(doc("a.yaml", "garbage"), doc("b.yaml", "1.0.0"))
	if _, ok := err.(*InvalidVersionError); !ok {
		t.Fatalf("expected InvalidVersionError, got %T: %v", err, err)
	}
}
