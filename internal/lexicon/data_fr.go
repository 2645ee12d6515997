package lexicon

func buildFrench() *Lexicon {
	return &Lexicon{
		Language: French,

		voidWords: set(
			"le", "la", "les", "un", "une", "des", "de", "du",
			"en", "à", "au", "aux", "pour", "avec", "par",
			"et", "ou", "mais", "très", "ce", "cette", "ces",
		),
		articles: set("le", "la", "les", "un", "une", "des"),
		auxiliaries: set(
			"est", "sont", "était", "étaient", "sera",
			"peut", "peuvent", "pourrait", "fait", "font", "doit",
		),
		trailingAux:      set("faire"),
		capabilityModals: set("peut", "peuvent", "pourrait", "sait"),
		questionWords: map[string]QuestionKind{
			"qui":      QuestionWho,
			"que":      QuestionWhat,
			"quoi":     QuestionWhat,
			"comment":  QuestionHow,
			"pourquoi": QuestionWhy,
			"où":       QuestionWhere,
			"quand":    QuestionWhen,
			"quel":     QuestionWhich,
			"quelle":   QuestionWhich,
			"quels":    QuestionWhich,
			"quelles":  QuestionWhich,
		},
		questionPhrases: map[string]QuestionKind{
			"qu'est-ce": QuestionWhat,
		},
		conjunctions: set("et"),
		disjunctions: set("ou"),
		commands: map[string]CommandKind{
			"exécute": CommandRun,
			"lance":   CommandRun,
			"montre":  CommandShow,
			"affiche": CommandShow,
			"statut":  CommandStatus,
			"aide":    CommandHelp,
			"quitter": CommandQuit,
		},
		goalVerbs: set(
			"apprends", "recherche", "surveille", "trouve",
			"explore", "étudie", "suis",
		),
		goalConnectors: set("sur", "de", "plus", "le", "la", "à"),

		patterns: []Pattern{
			{Words: []string{"se", "trouve", "à"}, Predicate: "located-in", Confidence: 0.95},
			{Words: []string{"se", "trouve", "en"}, Predicate: "located-in", Confidence: 0.95},
			{Words: []string{"fait", "partie", "de"}, Predicate: "part-of", Confidence: 0.95},
			{Words: []string{"est", "fait", "de"}, Predicate: "made-of", Confidence: 0.9},
			{Words: []string{"est", "connu", "comme"}, Predicate: "known-as", Confidence: 0.9},
			{Words: []string{"est", "un"}, Predicate: "is-a", Confidence: 0.95},
			{Words: []string{"est", "une"}, Predicate: "is-a", Confidence: 0.95},
			{Words: []string{"habite", "à"}, Predicate: "lives-in", Confidence: 0.9},
			{Words: []string{"vit", "à"}, Predicate: "lives-in", Confidence: 0.9},
			{Words: []string{"travaille", "chez"}, Predicate: "works-at", Confidence: 0.9},
			{Words: []string{"travaille", "à"}, Predicate: "works-at", Confidence: 0.85},
			{Words: []string{"appartient", "à"}, Predicate: "belongs-to", Confidence: 0.85},
			{Words: []string{"sont"}, Predicate: "is-a", Confidence: 0.85},
			{Words: []string{"est"}, Predicate: "is-a", Confidence: 0.75},
			{Words: []string{"a"}, Predicate: "has", Confidence: 0.7},
			{Words: []string{"ont"}, Predicate: "has", Confidence: 0.8},
			{Words: []string{"peut"}, Predicate: "can-do", Confidence: 0.85},
			{Words: []string{"sait"}, Predicate: "knows", Confidence: 0.85},
			{Words: []string{"veut"}, Predicate: "wants", Confidence: 0.8},
			{Words: []string{"cause"}, Predicate: "causes", Confidence: 0.85},
			{Words: []string{"signifie"}, Predicate: "means", Confidence: 0.85},
		},
	}
}
