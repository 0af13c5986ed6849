package render

import (
	"testing"

	"github.com/joshuafuller/dnswire/internal/wire"
	"github.com/joshuafuller/dnswire/name"
)

func TestWriteNameUncompressedRoundTrip(t *testing.T) {
	n, _ := name.Parse("www.example.com.")
	r := New(DefaultCapacity)
	if err := r.WriteName(n, false); err != nil {
		t.Fatalf("WriteName failed: %v", err)
	}
	reader := wire.NewReader(r.Bytes())
	got, err := name.DecodeFrom(reader)
	if err != nil {
		t.Fatalf("DecodeFrom failed: %v", err)
	}
	if !got.Equal(n) {
		t.Fatalf("round trip = %q, want %q", got.String(), n.String())
	}
}

func TestWriteNameCompressesRepeatedSuffix(t *testing.T) {
	a, _ := name.Parse("www.example.com.")
	b, _ := name.Parse("mail.example.com.")
	r := New(DefaultCapacity)
	if err := r.WriteName(a, true); err != nil {
		t.Fatalf("WriteName a failed: %v", err)
	}
	posBeforeB := r.Len()
	if err := r.WriteName(b, true); err != nil {
		t.Fatalf("WriteName b failed: %v", err)
	}
	posAfterB := r.Len()

	// "mail" (1+4 bytes) followed by a 2-byte pointer into "example.com."
	// written for a; anything else indicates the suffix was not reused.
	if got, want := posAfterB-posBeforeB, 1+4+2; got != want {
		t.Fatalf("compressed write length = %d, want %d", got, want)
	}

	readerA := wire.NewReader(r.Bytes())
	gotA, err := name.DecodeFrom(readerA)
	if err != nil {
		t.Fatalf("decode a failed: %v", err)
	}
	if !gotA.Equal(a) {
		t.Fatalf("decoded a = %q, want %q", gotA.String(), a.String())
	}

	readerB := wire.NewReader(r.Bytes())
	readerB.SetPosition(posBeforeB)
	gotB, err := name.DecodeFrom(readerB)
	if err != nil {
		t.Fatalf("decode b failed: %v", err)
	}
	if !gotB.Equal(b) {
		t.Fatalf("decoded b = %q, want %q", gotB.String(), b.String())
	}
}

func TestWriteNameFullMatchIsSinglePointer(t *testing.T) {
	a, _ := name.Parse("www.example.com.")
	r := New(DefaultCapacity)
	if err := r.WriteName(a, true); err != nil {
		t.Fatalf("WriteName a failed: %v", err)
	}
	pos := r.Len()
	if err := r.WriteName(a, true); err != nil {
		t.Fatalf("WriteName repeat failed: %v", err)
	}
	if got, want := r.Len()-pos, 2; got != want {
		t.Fatalf("repeated identical name wrote %d bytes, want %d (bare pointer)", got, want)
	}
}

func TestWriteNameRespectsCapacity(t *testing.T) {
	n, _ := name.Parse("www.example.com.")
	r := New(4)
	if err := r.WriteName(n, false); err == nil {
		t.Fatal("WriteName into an undersized buffer: want error")
	}
}

func TestResetClearsCompressionTable(t *testing.T) {
	a, _ := name.Parse("www.example.com.")
	r := New(DefaultCapacity)
	_ = r.WriteName(a, true)
	r.Reset()
	if r.Len() != 0 {
		t.Fatalf("Len() after Reset = %d, want 0", r.Len())
	}
	pos := r.Len()
	if err := r.WriteName(a, true); err != nil {
		t.Fatalf("WriteName after reset failed: %v", err)
	}
	if r.Len()-pos == 2 {
		t.Fatal("compression table should have been cleared by Reset")
	}
}
