package rrtype

import "testing"

func TestTypeStringRoundTrip(t *testing.T) {
	cases := []Type{A, AAAA, NS, CNAME, SOA, MX, TXT, SRV, NAPTR, OPT, DS, RRSIG, NSEC, DNSKEY}
	for _, want := range cases {
		s := want.String()
		got, err := ParseType(s)
		if err != nil {
			t.Fatalf("ParseType(%q) failed: %v", s, err)
		}
		if got != want {
			t.Errorf("ParseType(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestTypeUnknownEscape(t *testing.T) {
	got, err := ParseType("TYPE1234")
	if err != nil {
		t.Fatalf("ParseType failed: %v", err)
	}
	if got != Type(1234) {
		t.Fatalf("ParseType(TYPE1234) = %v, want 1234", got)
	}
	if s := Type(1234).String(); s != "TYPE1234" {
		t.Fatalf("Type(1234).String() = %q, want TYPE1234", s)
	}
}

func TestTypeUnparseable(t *testing.T) {
	if _, err := ParseType("NOTATYPE"); err == nil {
		t.Fatal("ParseType(NOTATYPE): want error")
	}
}

func TestClassStringRoundTrip(t *testing.T) {
	for _, want := range []Class{IN, CH, HS, NONE, ANYC} {
		got, err := ParseClass(want.String())
		if err != nil {
			t.Fatalf("ParseClass failed: %v", err)
		}
		if got != want {
			t.Errorf("ParseClass(%q) = %v, want %v", want.String(), got, want)
		}
	}
}

func TestClassUnknownEscape(t *testing.T) {
	got, err := ParseClass("CLASS7")
	if err != nil {
		t.Fatalf("ParseClass failed: %v", err)
	}
	if got != Class(7) {
		t.Fatalf("ParseClass(CLASS7) = %v, want 7", got)
	}
}

func TestOpcodeString(t *testing.T) {
	if OpcodeNotify.String() != "NOTIFY" {
		t.Fatalf("OpcodeNotify.String() = %q", OpcodeNotify.String())
	}
	if Opcode(3).String() != "RESERVED3" {
		t.Fatalf("Opcode(3).String() = %q", Opcode(3).String())
	}
}

func TestRcodeString(t *testing.T) {
	if RcodeNXDomain.String() != "NXDOMAIN" {
		t.Fatalf("RcodeNXDomain.String() = %q", RcodeNXDomain.String())
	}
	if Rcode(11).String() != "RESERVED11" {
		t.Fatalf("Rcode(11).String() = %q", Rcode(11).String())
	}
}

func TestHeaderFlagSetClear(t *testing.T) {
	var flags uint16
	flags = FlagRD.Set(flags)
	flags = FlagAA.Set(flags)
	if !FlagRD.IsSet(flags) || !FlagAA.IsSet(flags) {
		t.Fatal("expected RD and AA set")
	}
	if FlagTC.IsSet(flags) {
		t.Fatal("TC should not be set")
	}
	flags = FlagRD.Clear(flags)
	if FlagRD.IsSet(flags) {
		t.Fatal("RD should have been cleared")
	}
	if !FlagAA.IsSet(flags) {
		t.Fatal("AA should remain set")
	}
}
