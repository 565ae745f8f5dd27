package numeral

import "slices"

// cardinals covers the Icelandic cardinals used by the voice grammar, in
// every gender plus the dative forms that follow "um" and "í".
var cardinals = map[string]int{
	"núll":     0,
	"einn":     1,
	"ein":      1,
	"eitt":     1,
	"einum":    1,
	"tveir":    2,
	"tvær":     2,
	"tvö":      2,
	"tveimur":  2,
	"tveim":    2,
	"þrír":     3,
	"þrjár":    3,
	"þrjú":     3,
	"þremur":   3,
	"þrem":     3,
	"fjórir":   4,
	"fjórar":   4,
	"fjögur":   4,
	"fjórum":   4,
	"fimm":     5,
	"sex":      6,
	"sjö":      7,
	"átta":     8,
	"níu":      9,
	"tíu":      10,
	"ellefu":   11,
	"tólf":     12,
	"þrettán":  13,
	"fjórtán":  14,
	"fimmtán":  15,
	"sextán":   16,
	"sautján":  17,
	"átján":    18,
	"nítján":   19,
	"tuttugu":  20,
	"þrjátíu":  30,
	"fjörutíu": 40,
	"fjörtíu":  40,
	"fimmtíu":  50,
	"sextíu":   60,
	"sjötíu":   70,
	"áttatíu":  80,
	"níutíu":   90,
	"hundrað":  100,
	"hundruð":  100,
}

var multiplicatives = map[string]int{
	"einu sinni":     1,
	"tvisvar":        2,
	"tvisvar sinnum": 2,
	"þrisvar":        3,
	"þrisvar sinnum": 3,
}

// Word returns the value of a cardinal number word.
func Word(w string) (int, bool) {
	v, ok := cardinals[w]
	return v, ok
}

// Words lists every cardinal in the table, sorted.
func Words() []string {
	out := make([]string, 0, len(cardinals))
	for w := range cardinals {
		out = append(out, w)
	}
	slices.Sort(out)
	return out
}

// Multiplicative maps repeat adverbs ("þrisvar") to their count.
func Multiplicative(phrase string) (int, bool) {
	v, ok := multiplicatives[phrase]
	return v, ok
}

// MultiplicativePhrases lists the repeat adverbs known to Multiplicative.
func MultiplicativePhrases() []string {
	out := make([]string, 0, len(multiplicatives))
	for p := range multiplicatives {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}
