package lexicon

func buildRussian() *Lexicon {
	return &Lexicon{
		Language: Russian,

		voidWords: set(
			"в", "на", "с", "к", "по", "из", "у", "о", "об", "обо",
			"и", "или", "но", "а", "же", "очень", "это", "этот", "эта",
		),
		// Russian has no articles; the question-frame article strip
		// is a no-op for this language.
		articles: set(),
		auxiliaries: set(
			"является", "есть", "был", "была", "были", "будет",
			"может", "могут", "ли", "должен",
		),
		trailingAux:      set("делать"),
		capabilityModals: set("может", "могут", "умеет", "способен"),
		questionWords: map[string]QuestionKind{
			"кто":    QuestionWho,
			"кого":   QuestionWho,
			"чей":    QuestionWho,
			"что":    QuestionWhat,
			"как":    QuestionHow,
			"почему": QuestionWhy,
			"зачем":  QuestionWhy,
			"где":    QuestionWhere,
			"куда":   QuestionWhere,
			"когда":  QuestionWhen,
			"какой":  QuestionWhich,
			"какая":  QuestionWhich,
			"какое":  QuestionWhich,
			"какие":  QuestionWhich,
		},
		questionPhrases: map[string]QuestionKind{},
		conjunctions:    set("и"),
		disjunctions:    set("или"),
		commands: map[string]CommandKind{
			"запусти": CommandRun,
			"покажи":  CommandShow,
			"статус":  CommandStatus,
			"помощь":  CommandHelp,
			"выход":   CommandQuit,
		},
		goalVerbs: set(
			"изучи", "исследуй", "отслеживай", "найди",
			"разузнай", "наблюдай",
		),
		goalConnectors: set("о", "об", "обо", "про", "больше"),

		patterns: []Pattern{
			{Words: []string{"является", "частью"}, Predicate: "part-of", Confidence: 0.95},
			{Words: []string{"находится", "в"}, Predicate: "located-in", Confidence: 0.95},
			{Words: []string{"сделан", "из"}, Predicate: "made-of", Confidence: 0.9},
			{Words: []string{"известен", "как"}, Predicate: "known-as", Confidence: 0.9},
			{Words: []string{"живет", "в"}, Predicate: "lives-in", Confidence: 0.9},
			{Words: []string{"живёт", "в"}, Predicate: "lives-in", Confidence: 0.9},
			{Words: []string{"работает", "в"}, Predicate: "works-at", Confidence: 0.9},
			{Words: []string{"приводит", "к"}, Predicate: "causes", Confidence: 0.7},
			{Words: []string{"это"}, Predicate: "is-a", Confidence: 0.9},
			{Words: []string{"является"}, Predicate: "is-a", Confidence: 0.85},
			{Words: []string{"есть"}, Predicate: "is-a", Confidence: 0.7},
			{Words: []string{"имеет"}, Predicate: "has", Confidence: 0.85},
			{Words: []string{"имеют"}, Predicate: "has", Confidence: 0.85},
			{Words: []string{"может"}, Predicate: "can-do", Confidence: 0.85},
			{Words: []string{"знает"}, Predicate: "knows", Confidence: 0.85},
			{Words: []string{"хочет"}, Predicate: "wants", Confidence: 0.8},
			{Words: []string{"вызывает"}, Predicate: "causes", Confidence: 0.85},
			{Words: []string{"означает"}, Predicate: "means", Confidence: 0.85},
		},
	}
}
