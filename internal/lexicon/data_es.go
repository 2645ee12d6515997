package lexicon

func buildSpanish() *Lexicon {
	return &Lexicon{
		Language: Spanish,

		voidWords: set(
			"el", "la", "los", "las", "un", "una", "unos", "unas",
			"de", "del", "en", "a", "al", "para", "con", "por",
			"y", "e", "o", "u", "pero", "muy", "este", "esta", "ese", "esa",
		),
		articles: set("el", "la", "los", "las", "un", "una", "unos", "unas"),
		auxiliaries: set(
			"es", "son", "está", "están", "era", "eran", "fue",
			"puede", "pueden", "podría", "hace", "hacen", "debe",
		),
		trailingAux:      set("hacer"),
		capabilityModals: set("puede", "pueden", "podría", "sabe"),
		questionWords: map[string]QuestionKind{
			"quién":   QuestionWho,
			"quien":   QuestionWho,
			"quiénes": QuestionWho,
			"qué":     QuestionWhat,
			"cómo":    QuestionHow,
			"dónde":   QuestionWhere,
			"cuándo":  QuestionWhen,
			"cuál":    QuestionWhich,
			"cuáles":  QuestionWhich,
		},
		questionPhrases: map[string]QuestionKind{
			"por qué": QuestionWhy,
		},
		conjunctions: set("y", "e"),
		disjunctions: set("o", "u"),
		commands: map[string]CommandKind{
			"ejecuta": CommandRun,
			"corre":   CommandRun,
			"muestra": CommandShow,
			"estado":  CommandStatus,
			"ayuda":   CommandHelp,
			"salir":   CommandQuit,
		},
		goalVerbs: set(
			"aprende", "investiga", "monitorea", "encuentra",
			"explora", "estudia", "rastrea",
		),
		goalConnectors: set("sobre", "acerca", "de", "más", "el", "la"),

		patterns: []Pattern{
			{Words: []string{"se", "encuentra", "en"}, Predicate: "located-in", Confidence: 0.95},
			{Words: []string{"es", "parte", "de"}, Predicate: "part-of", Confidence: 0.95},
			{Words: []string{"está", "hecho", "de"}, Predicate: "made-of", Confidence: 0.9},
			{Words: []string{"se", "conoce", "como"}, Predicate: "known-as", Confidence: 0.9},
			{Words: []string{"es", "un"}, Predicate: "is-a", Confidence: 0.95},
			{Words: []string{"es", "una"}, Predicate: "is-a", Confidence: 0.95},
			{Words: []string{"vive", "en"}, Predicate: "lives-in", Confidence: 0.9},
			{Words: []string{"trabaja", "en"}, Predicate: "works-at", Confidence: 0.9},
			{Words: []string{"pertenece", "a"}, Predicate: "belongs-to", Confidence: 0.85},
			{Words: []string{"son"}, Predicate: "is-a", Confidence: 0.85},
			{Words: []string{"es"}, Predicate: "is-a", Confidence: 0.75},
			{Words: []string{"tiene"}, Predicate: "has", Confidence: 0.85},
			{Words: []string{"tienen"}, Predicate: "has", Confidence: 0.85},
			{Words: []string{"puede"}, Predicate: "can-do", Confidence: 0.85},
			{Words: []string{"sabe"}, Predicate: "knows", Confidence: 0.85},
			{Words: []string{"quiere"}, Predicate: "wants", Confidence: 0.8},
			{Words: []string{"causa"}, Predicate: "causes", Confidence: 0.85},
			{Words: []string{"significa"}, Predicate: "means", Confidence: 0.85},
		},
	}
}
