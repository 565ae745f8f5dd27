package channel

import "sync"

// stod2 expands a Stöð 2 suffix with the ways speech recognition tends to
// hear "stöð".
func stod2(suffix string) []string {
	out := make([]string, 0, 3)
	for _, prefix := range []string{"stöð 2", "studdu 2", "studduð 2"} {
		if suffix == "" {
			out = append(out, prefix)
			continue
		}
		out = append(out, prefix+" "+suffix)
	}
	return out
}

func siminn(suffix string) []string {
	out := make([]string, 0, 3)
	for _, prefix := range []string{"síminn sport", "símans sport", "sími sport"} {
		if suffix == "" {
			out = append(out, prefix)
			continue
		}
		out = append(out, prefix+" "+suffix)
	}
	return out
}

// DefaultEntries is the channel line-up of the set-top box.
func DefaultEntries() []Entry {
	return []Entry{
		{Name: "RÚV", ID: 22759586, Aliases: []string{"rúv", "ríkisútvarpið", "ríkisútvarp", "stöð 1", "1"}},
		{Name: "Sjónvarp Símans", ID: 22759594, Aliases: []string{"sjónvarp síminn", "sjónvarp sími", "2"}},
		{Name: "Stöð 2", ID: 22759599, Aliases: stod2("")},
		{Name: "Stöð 2 Fjölskylda", ID: 22759572, Aliases: stod2("fjölskylda")},
		{Name: "Stöð 2 Bíó", ID: 22759610, Aliases: stod2("bíó")},
		{Name: "Hringbraut", ID: 40043140},
		{Name: "Stöð 2 Vísir", ID: 22759598, Aliases: stod2("vísir")},
		{Name: "RÚV 2", ID: 46888903, Aliases: []string{"ríkisútvarpið 2", "ríkisútvarp 2"}},
		{Name: "Síminn Sport", ID: 46888998, Aliases: append(siminn(""), siminn("1")...)},
		{Name: "Síminn Sport 2", ID: 46888999, Aliases: siminn("2")},
		{Name: "Síminn Sport 3", ID: 46890006, Aliases: siminn("3")},
		{Name: "Síminn Sport 4", ID: 46890007, Aliases: siminn("4")},
		{Name: "Alþingi", ID: 22759659},
		{Name: "Omega", ID: 22759667, Aliases: []string{"ómega"}},
		{Name: "Stöð 2 Sport", ID: 22759619, Aliases: append(stod2("sport"), stod2("sport 1")...)},
		{Name: "Stöð 2 Sport 2", ID: 22759656, Aliases: stod2("sport 2")},
		{Name: "Stöð 2 Sport 3", ID: 22759600, Aliases: stod2("sport 3")},
		{Name: "Stöð 2 Sport 4", ID: 22759643, Aliases: stod2("sport 4")},
		{Name: "Stöð 2 eSport", ID: 46890013, Aliases: append(stod2("e sport"), stod2("esport")...)},
		{Name: "Stöð 2 Golf", ID: 40043123, Aliases: stod2("golf")},
	}
}

var defaultDirectory = sync.OnceValue(func() *Directory {
	d, err := NewDirectory(DefaultEntries())
	if err != nil {
		panic(err)
	}
	return d
})

// Default returns the shared directory built from DefaultEntries.
func Default() *Directory {
	return defaultDirectory()
}
