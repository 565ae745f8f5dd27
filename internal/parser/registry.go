package parser

import (
	"fmt"

	"github.com/appengine-ltd/tvremote/internal/command"
	"github.com/appengine-ltd/tvremote/internal/numeral"
)

// Alternative ids of the default grammar.
const (
	AltVolumeSet     = "volume.set"
	AltVolumeStep    = "volume.step"
	AltVolumeMute    = "volume.mute"
	AltRemoteMute    = "remote.mute"
	AltRemoteButton  = "remote.button"
	AltRemotePlay    = "remote.playback"
	AltRemoteMove    = "remote.move"
	AltRemoteSpool   = "remote.spool"
	AltRemoteProgram = "remote.program"
	AltChannelSelect = "channel.select"
	AltChannelChange = "channel.change"
	AltSearch        = "search"
	AltTimeTravel    = "timetravel"
	AltStartOver     = "timetravel.startover"
)

type Registry struct {
	alternatives []Alternative
	ids          map[string]bool
}

func NewRegistry() *Registry {
	return &Registry{ids: make(map[string]bool)}
}

// Register adds a top-level alternative. Ids must be unique; registration
// order breaks ties between equally scored parses.
func (r *Registry) Register(id string, rule *Rule) error {
	if id == "" || rule == nil {
		return fmt.Errorf("register alternative: empty id or rule")
	}
	if r.ids[id] {
		return fmt.Errorf("register alternative: duplicate id %q", id)
	}
	r.ids[id] = true
	r.alternatives = append(r.alternatives, Alternative{ID: id, Rule: rule})
	return nil
}

func (r *Registry) mustRegister(id string, rule *Rule) {
	if err := r.Register(id, rule); err != nil {
		panic(err)
	}
}

// Alternatives returns the registered alternatives in registration order.
func (r *Registry) Alternatives() []Alternative {
	out := make([]Alternative, len(r.alternatives))
	copy(out, r.alternatives)
	return out
}

var (
	changeVerbs = []string{"skiptu", "flettu", "settu", "skipta", "fletta", "setja", "stilltu", "stilla"}
	moveVerbs   = []string{"farðu", "fara", "færðu", "færa", "ýttu á", "ýta á", "smelltu á", "ýttu", "smelltu"}
	stationNoun = []string{"stöð", "stöðina", "rás", "rásina"}
	volumeNoun  = []string{"hljóð", "hljóðið", "hljóðstyrk", "hljóðstyrkinn", "hljóðstyrkur", "ljóð"}
)

type buttonWords struct {
	button string
	words  []string
}

// Single-press buttons. Several entries include common speech recognition
// mis-hearings of the intended word.
var plainButtons = []buttonWords{
	{button: "TV", words: []string{"sjónvarp"}},
	{button: "VOD", words: []string{"aðalvalmynd"}},
	{button: "MENU", words: []string{"valmynd", "valnefnd"}},
	{button: "BACKSPACE", words: []string{"stroka", "stroka út", "eyða", "eyða út", "hreinsa"}},
	{button: "SEARCH", words: []string{"leita"}},
	{button: "OK", words: []string{"ok", "okei", "ókei", "engey", "samþykkt"}},
	{button: "BACK", words: []string{"bakka", "til baka", "þakka", "vaka", "pakka"}},
	{button: "INFO", words: []string{"upplýsingar"}},
	{button: "YELLOW", words: []string{"textavarp"}},
	{button: "STOP", words: []string{"stopp", "stans", "stoppa", "stoppaðu", "stansaðu"}},
	{button: "PAUSE", words: []string{"pása", "bíddu", "pásaðu", "hása", "kássa"}},
	{button: "RELOAD", words: []string{"endurhlaða", "byrja upp á nýtt", "byrjaðu upp á nýtt"}},
	{button: "QUIT", words: []string{"hætta", "hættu"}},
	{button: "OPTIONS", words: []string{"valmöguleikar"}},
	{button: "LANGUAGE", words: []string{"tungumál"}},
}

var muteWords = []string{
	"þögn", "þagna", "þagnað", "þagna þú", "þagnaðu", "þegið", "þegiðu",
	"þegja", "teygja", "beygja", "treyja", "freyja", "feginn",
	"ragna", "vegna", "gagna", "fagna", "magna",
}

// DefaultRegistry is the grammar for volume, remote buttons, channels,
// search and time travel.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	volumeUp := R(NodeVolumeUp, W("hækka", "hækkaðu", "hækkað", "hækka þú", "fækka"))
	volumeDown := R(NodeVolumeDown, W("lækka", "lækkaðu", "lækkað", "lækka þú"))
	noun := Opt(W(volumeNoun...))
	level := R(NodeVolumeLevel, Num(), Opt(R(NodePercentUnit, W("prósent", "prósentum", "%"))))

	r.mustRegister(AltVolumeSet, R(NodeVolumeSet, Or(
		Seq(W(volumeNoun...), level),
		Seq(volumeUp, noun, Opt(W("upp í", "í", "alveg upp í")), level),
		Seq(volumeDown, noun, Opt(W("niður í", "í", "alveg niður í")), level),
	)))
	r.mustRegister(AltVolumeStep, R(NodeVolumeStep,
		Or(volumeUp, volumeDown), noun, Opt(Seq(W("um"), level)),
	))
	r.mustRegister(AltVolumeMute, R(NodeMute, volumeDown, noun, W("í botn", "alveg niður", "alveg")))
	r.mustRegister(AltRemoteMute, R(NodeMute, W(muteWords...)))

	buttons := make([]Symbol, 0, len(plainButtons)+1)
	for _, b := range plainButtons {
		buttons = append(buttons, T(NodeButton, b.button, W(b.words...)))
	}
	buttons = append(buttons, T(NodeButton, "FAVORITE",
		Opt(W("setja í", "settu í", "bæta við í", "bæta við", "bættu við í", "bættu við")), W("uppáhald"),
	))
	r.mustRegister(AltRemoteButton, R(NodeRemote, Or(buttons...)))

	r.mustRegister(AltRemotePlay, R(NodeRemote,
		T(NodeButton, "PLAY", W("spila áfram", "halda áfram", "spila", "áfram")),
	))

	repeatWords := numeral.MultiplicativePhrases()
	r.mustRegister(AltRemoteMove, R(NodeRemote,
		Opt(W(moveVerbs...)),
		Or(
			T(NodeDirection, "UP", W("upp")),
			T(NodeDirection, "DOWN", W("niður")),
			T(NodeDirection, "LEFT", W("vinstri")),
			T(NodeDirection, "RIGHT", W("hægri", "vigri")),
		),
		Opt(R(NodeRepeat, Or(
			W(repeatWords...),
			Seq(Num(), W("sinnum", "skref", "skrefum")),
		))),
	))

	r.mustRegister(AltRemoteSpool, R(NodeRemote,
		W("spóla", "spólaðu"),
		Or(
			T(NodeSpool, "REWIND", W("aftur", "til baka", "aftur á bak")),
			T(NodeSpool, "FORWARD", W("áfram", "fram á við")),
		),
		Opt(R(NodeSeconds, Opt(W("um")), Num(), W("sekúndur", "sekúndum", "sekúndu", "sek"))),
	))

	r.mustRegister(AltRemoteProgram, R(NodeRemote,
		Opt(Seq(W(changeVerbs...), Opt(W("yfir")), W("á"))),
		Or(
			T(NodeButton, "PROGRAM_UP", Or(
				Seq(W(stationNoun...), W("upp", "áfram", "fram á við")),
				Seq(W("næsta", "næstu"), W(stationNoun...)),
				Seq(W("skiptu um", "skipta um"), W(stationNoun...)),
			)),
			T(NodeButton, "PROGRAM_DOWN", Or(
				Seq(W(stationNoun...), W("niður", "til baka")),
				Seq(W("síðasta", "síðustu", "seinasta", "seinustu", "fyrri"), W(stationNoun...)),
			)),
		),
	))

	r.mustRegister(AltChannelSelect, R(NodeChannelSelect, R(NodeChannelName, Or(
		Seq(
			W("stöð", "studdu", "studduð", "rúv", "ríkisútvarpið", "ríkisútvarp"),
			Opt(Num()),
			Opt(W("sport", "e sport", "bíó", "fjölskylda", "vísir", "golf")),
			Opt(Num()),
		),
		Seq(W("sjónvarp"), W("símans", "síminn", "sími")),
		Seq(W("síminn", "símans", "sími"), W("sport"), Opt(Num())),
		W("hringbraut", "alþingi", "omega", "ómega"),
		Num(),
	))))

	r.mustRegister(AltChannelChange, R(NodeChannelChange,
		W(changeVerbs...), Opt(W("yfir")), W("á"), R(NodeChannelText, Text()),
	))

	r.mustRegister(AltSearch, R(NodeSearch,
		W("finna", "finndu", "leita að", "leitaðu að"), R(NodeSearchTerm, Text()),
	))

	r.mustRegister(AltTimeTravel, R(NodeTimeTravel,
		Opt(W("getur", "getur þú", "geturðu")),
		W("spila", "spilar", "spilaðu", "spilað", "spilaði"),
		R(NodeProgram, Text()),
		Opt(Seq(
			Opt(W("síðan", "frá", "frá því", "frá það")),
			Or(
				T(NodeDay, command.Today, W("í dag", "í kvöld")),
				T(NodeDay, command.Yesterday, W("í gær", "geir", "hér")),
				T(NodeDay, command.DayBeforeYesterday, W("í fyrradag")),
			),
		)),
	))

	r.mustRegister(AltStartOver, R(NodeStartOver,
		W("byrja upp á nýtt", "byrjaðu upp á nýtt", "byrja byrjun", "byrja frá byrjun"),
	))

	return r
}
