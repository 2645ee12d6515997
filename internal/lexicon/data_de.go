package lexicon

func buildGerman() *Lexicon {
	return &Lexicon{
		Language: German,

		voidWords: set(
			"der", "die", "das", "ein", "eine", "einen", "einem", "eines",
			"dem", "den", "von", "in", "an", "zu", "für", "mit", "aus",
			"und", "oder", "aber", "sehr", "dieser", "diese", "dieses",
		),
		articles: set(
			"der", "die", "das", "ein", "eine", "einen",
			"einem", "eines", "dem", "den",
		),
		auxiliaries: set(
			"ist", "sind", "war", "waren", "wird", "werden",
			"kann", "können", "könnte", "macht", "hat", "muss",
		),
		trailingAux:      set("tun", "machen"),
		capabilityModals: set("kann", "können", "könnte"),
		questionWords: map[string]QuestionKind{
			"wer":     QuestionWho,
			"wem":     QuestionWho,
			"wessen":  QuestionWho,
			"was":     QuestionWhat,
			"wie":     QuestionHow,
			"warum":   QuestionWhy,
			"wieso":   QuestionWhy,
			"weshalb": QuestionWhy,
			"wo":      QuestionWhere,
			"wann":    QuestionWhen,
			"welche":  QuestionWhich,
			"welcher": QuestionWhich,
			"welches": QuestionWhich,
		},
		questionPhrases: map[string]QuestionKind{},
		conjunctions:    set("und"),
		disjunctions:    set("oder"),
		commands: map[string]CommandKind{
			"starte": CommandRun,
			"führe":  CommandRun,
			"zeige":  CommandShow,
			"status": CommandStatus,
			"hilfe":  CommandHelp,
			"beende": CommandQuit,
		},
		goalVerbs: set(
			"lerne", "erforsche", "überwache", "finde",
			"erkunde", "studiere", "verfolge",
		),
		goalConnectors: set("über", "mehr", "das", "die", "den"),

		patterns: []Pattern{
			{Words: []string{"befindet", "sich", "in"}, Predicate: "located-in", Confidence: 0.95},
			{Words: []string{"ist", "teil", "von"}, Predicate: "part-of", Confidence: 0.95},
			{Words: []string{"besteht", "aus"}, Predicate: "made-of", Confidence: 0.9},
			{Words: []string{"ist", "bekannt", "als"}, Predicate: "known-as", Confidence: 0.9},
			{Words: []string{"ist", "ein"}, Predicate: "is-a", Confidence: 0.95},
			{Words: []string{"ist", "eine"}, Predicate: "is-a", Confidence: 0.95},
			{Words: []string{"wohnt", "in"}, Predicate: "lives-in", Confidence: 0.9},
			{Words: []string{"lebt", "in"}, Predicate: "lives-in", Confidence: 0.9},
			{Words: []string{"arbeitet", "bei"}, Predicate: "works-at", Confidence: 0.9},
			{Words: []string{"gehört", "zu"}, Predicate: "belongs-to", Confidence: 0.85},
			{Words: []string{"führt", "zu"}, Predicate: "causes", Confidence: 0.7},
			{Words: []string{"sind"}, Predicate: "is-a", Confidence: 0.85},
			{Words: []string{"ist"}, Predicate: "is-a", Confidence: 0.75},
			{Words: []string{"hat"}, Predicate: "has", Confidence: 0.85},
			{Words: []string{"haben"}, Predicate: "has", Confidence: 0.85},
			{Words: []string{"kann"}, Predicate: "can-do", Confidence: 0.85},
			{Words: []string{"weiß"}, Predicate: "knows", Confidence: 0.85},
			{Words: []string{"weiss"}, Predicate: "knows", Confidence: 0.85},
			{Words: []string{"will"}, Predicate: "wants", Confidence: 0.8},
			{Words: []string{"verursacht"}, Predicate: "causes", Confidence: 0.85},
			{Words: []string{"bedeutet"}, Predicate: "means", Confidence: 0.85},
		},
	}
}
