package resolve

import (
	"fmt"
	"slices"

	"github.com/appengine-ltd/tvremote/internal/command"
)

type help struct {
	kinds    []command.Kind
	topics   []string
	examples []string
}

var helps = []help{
	{
		kinds:    []command.Kind{command.VolumeAbs, command.VolumeRel, command.Mute},
		topics:   []string{"hækka", "lækka", "þögn", "þagna", "hljóð", "hljóðið", "hljóðstyrkur", "hljóðstyrkinn"},
		examples: []string{"Hækka hljóðið", "Lækka hljóðstyrkinn", "Hækka", "Þagna", "Þögn!", "hljóð fimmtíu prósent"},
	},
	{
		kinds:    []command.Kind{command.Button},
		topics:   []string{"upp", "niður", "vinstri", "hægri", "spóla", "valmynd"},
		examples: []string{"Farðu upp þrisvar", "Spólaðu áfram um tíu sekúndur", "Næsta stöð", "Valmynd"},
	},
	{
		kinds:    []command.Kind{command.ChannelSelect},
		topics:   []string{"rúv", "stöð", "sjónvarp", "símans", "rás"},
		examples: []string{"RÚV", "Sjónvarp Símans", "Hringbraut", "Síminn Sport", "Alþingi"},
	},
	{
		kinds:    []command.Kind{command.Search},
		topics:   []string{"finna", "finndu", "leita", "leitaðu"},
		examples: []string{"Finna Love Island"},
	},
	{
		kinds:    []command.Kind{command.TimeTravel, command.StartOver},
		topics:   []string{"spila", "spilaðu", "byrja"},
		examples: []string{"Spila Gísla Martein í kvöld", "Spila Kiljuna frá í gær", "Spila Tíufréttir frá því í fyrradag"},
	},
}

const helpFormat = "Ég get svarað ef þú spyrð til dæmis: %s?"

// HelpText returns an example request for the family of k.
func HelpText(k command.Kind) string {
	for _, h := range helps {
		if slices.Contains(h.kinds, k) {
			return fmt.Sprintf(helpFormat, h.examples[0])
		}
	}
	return ""
}

// Hint returns help for the first family whose topic word occurs in
// tokens. The example is picked from the utterance length so the same
// utterance always gets the same answer.
func Hint(tokens []string) (string, bool) {
	for _, h := range helps {
		for _, tok := range tokens {
			if slices.Contains(h.topics, tok) {
				ex := h.examples[len(tokens)%len(h.examples)]
				return fmt.Sprintf(helpFormat, ex), true
			}
		}
	}
	return "", false
}
