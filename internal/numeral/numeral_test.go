package numeral

import (
	"fmt"
	"testing"
)

func TestEveryTableWordResolvesExactly(t *testing.T) {
	for _, w := range Words() {
		want := cardinals[w]
		got := Resolve([]Fragment{Fragment(w)}, Absolute, false)
		if got.Value != want || got.Status != Parsed {
			t.Fatalf("Resolve(%q)=%+v want=%d parsed", w, got, want)
		}
	}
}

func TestAlternateSpellings(t *testing.T) {
	for _, w := range []string{"fjörutíu", "fjörtíu"} {
		if v, ok := Word(w); !ok || v != 40 {
			t.Fatalf("Word(%q)=%d,%v want=40", w, v, ok)
		}
	}
}

func TestTensAndUnitsCompose(t *testing.T) {
	for tens := 20; tens <= 90; tens += 10 {
		for units := 1; units <= 9; units++ {
			frags := []Fragment{Fragment(fmt.Sprint(tens)), Fragment(fmt.Sprint(units))}
			got := Resolve(frags, Absolute, false)
			if got.Value != tens+units {
				t.Fatalf("Resolve(%v)=%d want=%d", frags, got.Value, tens+units)
			}
		}
	}
}

func TestCompositionTable(t *testing.T) {
	tests := []struct {
		in   []string
		want int
	}{
		{in: []string{"fimmtíu", "einn"}, want: 51},
		{in: []string{"tuttugu", "þrjátíu"}, want: 30},
		{in: []string{"tíu", "fimm"}, want: 5},
		{in: []string{"níutíu", "níu"}, want: 99},
		{in: []string{"fimm", "sex"}, want: 6},
		{in: []string{"sextíu", "núll"}, want: 0},
		{in: []string{"sjötíu", "og", "tveir"}, want: 72},
	}
	for _, tc := range tests {
		got := Resolve(Fragments(tc.in), Absolute, false)
		if got.Value != tc.want {
			t.Fatalf("Resolve(%q)=%d want=%d", tc.in, got.Value, tc.want)
		}
	}
}

func TestMissingFragmentsDefaultToOne(t *testing.T) {
	got := Resolve(nil, Absolute, false)
	if got.Value != 1 || got.Status != Missing || !got.Defaulted() {
		t.Fatalf("Resolve(nil)=%+v want value 1 missing", got)
	}
}

func TestClampingByMode(t *testing.T) {
	tests := []struct {
		in       string
		mode     Mode
		negative bool
		want     int
	}{
		{in: "150", mode: Percent, want: 100},
		{in: "150", mode: Absolute, want: 100},
		{in: "-5", mode: Absolute, want: 0},
		{in: "-5", mode: Percent, want: 0},
		{in: "20", mode: Relative, negative: true, want: -20},
		{in: "20", mode: Relative, want: 20},
		{in: "500", mode: Relative, negative: true, want: -100},
		{in: "99999999999999999999999", mode: Absolute, want: 100},
	}
	for _, tc := range tests {
		got := Resolve([]Fragment{Fragment(tc.in)}, tc.mode, tc.negative)
		if got.Value != tc.want {
			t.Fatalf("Resolve(%q, %s, %v)=%d want=%d", tc.in, tc.mode, tc.negative, got.Value, tc.want)
		}
	}
}

func TestPercentLiterals(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{in: "50%", want: 50},
		{in: "fimmtíu%", want: 50},
		{in: "17,2", want: 17},
		{in: "17,5%", want: 18},
		{in: "pí", want: 3},
	}
	for _, tc := range tests {
		got := Resolve([]Fragment{Fragment(tc.in)}, Percent, false)
		if got.Value != tc.want || got.Status != Parsed {
			t.Fatalf("Resolve(%q, percent)=%+v want=%d", tc.in, got, tc.want)
		}
	}
}

func TestDecimalsOnlyReadInPercentMode(t *testing.T) {
	for _, in := range []string{"17,2", "pí"} {
		got := Resolve([]Fragment{Fragment(in)}, Absolute, false)
		if got.Value != 0 || got.Status != Unparsed {
			t.Fatalf("Resolve(%q, absolute)=%+v want 0 unparsed", in, got)
		}
	}
}

func TestUnparseableFragmentResolvesToZero(t *testing.T) {
	got := Resolve([]Fragment{"blablabla"}, Absolute, false)
	if got.Value != 0 || got.Status != Unparsed {
		t.Fatalf("Resolve(blablabla)=%+v want 0 unparsed", got)
	}
}

func TestOrdinals(t *testing.T) {
	got := Resolve([]Fragment{"17."}, Absolute, false)
	if got.Value != 17 {
		t.Fatalf("Resolve(17.)=%d want=17", got.Value)
	}
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{in: "17,2", want: 17.2, ok: true},
		{in: "17", want: 17, ok: true},
		{in: "sautján", want: 17, ok: true},
		{in: "17.", want: 17, ok: true},
		{in: "eitthvað", want: 0, ok: false},
	}
	for _, tc := range tests {
		got, ok := ParseDecimal(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseDecimal(%q)=%v,%v want=%v,%v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestMultiplicative(t *testing.T) {
	if v, ok := Multiplicative("þrisvar"); !ok || v != 3 {
		t.Fatalf("Multiplicative(þrisvar)=%d,%v want=3", v, ok)
	}
	if _, ok := Multiplicative("oft"); ok {
		t.Fatalf("did not expect a reading for oft")
	}
}

func TestIsToken(t *testing.T) {
	for _, tok := range []string{"12", "tólf", "50%", "17,2", "3.", "pí"} {
		if !IsToken(tok) {
			t.Fatalf("expected %q to be a numeral token", tok)
		}
	}
	for _, tok := range []string{"upp", "stöð", "og", "", "%"} {
		if IsToken(tok) {
			t.Fatalf("did not expect %q to be a numeral token", tok)
		}
	}
}

func TestBarePercentSignIsAUnit(t *testing.T) {
	if k := Fragment("%").Kind(); k != Unknown {
		t.Fatalf("Kind(%%)=%d want=Unknown", k)
	}
	if k := Fragment("50%").Kind(); k != PercentLiteral {
		t.Fatalf("Kind(50%%)=%d want=PercentLiteral", k)
	}
	if k := Fragment("fimmtíu").Kind(); k != NumberWord {
		t.Fatalf("Kind(fimmtíu)=%d want=NumberWord", k)
	}
}
