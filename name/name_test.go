package name

import "testing"

func TestParseWireForm(t *testing.T) {
	n, err := Parse("www.baidu.com.")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	wantRaw := []byte{3, 119, 119, 119, 5, 98, 97, 105, 100, 117, 3, 99, 111, 109, 0}
	if string(n.RawData()) != string(wantRaw) {
		t.Fatalf("RawData() = %v, want %v", n.RawData(), wantRaw)
	}
	wantOffsets := []byte{0, 4, 10, 14}
	if string(n.Offsets()) != string(wantOffsets) {
		t.Fatalf("Offsets() = %v, want %v", n.Offsets(), wantOffsets)
	}
}

func TestParseCaseInsensitiveEqual(t *testing.T) {
	a, err := Parse("www.KNET.cN")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if a.LabelCount() != 4 {
		t.Fatalf("LabelCount() = %d, want 4", a.LabelCount())
	}
	b, err := Parse("www.knet.cn")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !a.Equal(b) {
		t.Fatalf("%q and %q: want Equal", a, b)
	}
}

func TestParseRoot(t *testing.T) {
	for _, s := range []string{".", "@"} {
		n, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", s, err)
		}
		if !n.IsRoot() {
			t.Fatalf("Parse(%q): want root", s)
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []string{
		"a..b",
		"a\\",
		"a\\9x9.b",
		"a\\999.b",
	}
	for _, s := range cases {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q): want error, got nil", s)
		}
	}
}

func TestParseDecimalEscape(t *testing.T) {
	n, err := Parse("a\\046b.com")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if n.LabelCount() != 3 {
		t.Fatalf("LabelCount() = %d, want 3", n.LabelCount())
	}
}

func TestSplitAndParent(t *testing.T) {
	n, err := Parse("www.knet.cn.")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	cases := []struct {
		start, count int
		want         string
	}{
		{0, 1, "www."},
		{0, 3, "www.knet.cn."},
		{1, 2, "knet.cn."},
	}
	for _, c := range cases {
		got, err := n.Split(c.start, c.count)
		if err != nil {
			t.Fatalf("Split(%d,%d) failed: %v", c.start, c.count, err)
		}
		if got.String() != c.want {
			t.Errorf("Split(%d,%d) = %q, want %q", c.start, c.count, got.String(), c.want)
		}
	}

	if _, err := n.Parent(3); err != nil {
		t.Fatalf("Parent(3) on a 3-label name should succeed (root): %v", err)
	}
	if _, err := n.Parent(4); err == nil {
		t.Fatal("Parent(4) on a 3-label name: want error")
	}
}

func TestStripLeftRight(t *testing.T) {
	n, err := Parse("www.knet.cn.")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	left, err := n.StripLeft(1)
	if err != nil {
		t.Fatalf("StripLeft failed: %v", err)
	}
	if left.String() != "knet.cn." {
		t.Fatalf("StripLeft(1) = %q, want knet.cn.", left.String())
	}
	right, err := n.StripRight(1)
	if err != nil {
		t.Fatalf("StripRight failed: %v", err)
	}
	if right.String() != "www.knet." {
		t.Fatalf("StripRight(1) = %q, want www.knet.", right.String())
	}
}

func TestHashCaseFolding(t *testing.T) {
	a, _ := Parse("wwwnnnnnnnnnnnnn.KNET.cNNNNNNNNN")
	b, _ := Parse("wwwnnnnnnnnnnnnn.KNET.cNNNNNNNNn")
	if a.Hash() != b.Hash() {
		t.Fatal("case-differing-only names should hash equal")
	}
	c, _ := Parse("wwwnnnnnnnnnnnnn.KNET.cNNNNNNNNnx")
	if a.Hash() == c.Hash() {
		t.Fatal("a longer name should (overwhelmingly likely) hash differently")
	}
}

func TestIsSubdomain(t *testing.T) {
	root := Root()
	cn, _ := Parse("cn")
	knet, _ := Parse("kNet")
	wwwKnetCn, _ := Parse("www.knet.Cn")
	knetCn, _ := Parse("www.knet")

	if !wwwKnetCn.IsSubdomain(cn) {
		t.Error("www.knet.Cn should be a subdomain of cn")
	}
	if !wwwKnetCn.IsSubdomain(root) {
		t.Error("every name should be a subdomain of root")
	}
	if wwwKnetCn.IsSubdomain(knet) {
		t.Error("www.knet.Cn should not be a subdomain of kNet")
	}
	if knetCn.IsSubdomain(wwwKnetCn) {
		t.Error("www.knet should not be a subdomain of www.knet.Cn")
	}
}

func TestGetRelation(t *testing.T) {
	grandParent, _ := Parse("com")
	parent, _ := Parse("BaIdU.CoM")
	child, _ := Parse("wWw.bAiDu.cOm")
	brother, _ := Parse("AaA.bAiDu.cOm")

	if rel := grandParent.GetRelation(parent, false).Relation; rel != RelationSuperDomain {
		t.Errorf("com vs baidu.com: got %v, want SuperDomain", rel)
	}
	if rel := parent.GetRelation(child, false).Relation; rel != RelationSuperDomain {
		t.Errorf("baidu.com vs www.baidu.com: got %v, want SuperDomain", rel)
	}
	if rel := child.GetRelation(parent, false).Relation; rel != RelationSubDomain {
		t.Errorf("www.baidu.com vs baidu.com: got %v, want SubDomain", rel)
	}
	if rel := child.GetRelation(brother, false).Relation; rel != RelationCommonAncestor {
		t.Errorf("www.baidu.com vs aaa.baidu.com: got %v, want CommonAncestor", rel)
	}
	if rel := child.GetRelation(child, false).Relation; rel != RelationEqual {
		t.Errorf("www.baidu.com vs itself: got %v, want Equal", rel)
	}
}

func TestConcat(t *testing.T) {
	www, _ := Parse("www")
	exampleCom, _ := Parse("example.com.")
	got, err := www.Concat(exampleCom)
	if err != nil {
		t.Fatalf("Concat failed: %v", err)
	}
	if got.String() != "www.example.com." {
		t.Fatalf("Concat = %q, want www.example.com.", got.String())
	}
}

func TestReverse(t *testing.T) {
	n, _ := Parse("a.b.c.")
	rev, err := n.Reverse()
	if err != nil {
		t.Fatalf("Reverse failed: %v", err)
	}
	if rev.String() != "c.b.a." {
		t.Fatalf("Reverse = %q, want c.b.a.", rev.String())
	}
}

func TestWildcard(t *testing.T) {
	wc, _ := Parse("*.example.com.")
	if !wc.IsWildcard() {
		t.Fatal("*.example.com.: want IsWildcard true")
	}
	notWc, _ := Parse("www.example.com.")
	if notWc.IsWildcard() {
		t.Fatal("www.example.com.: want IsWildcard false")
	}
}
