package lexicon

func buildEnglish() *Lexicon {
	return &Lexicon{
		Language: English,

		voidWords: set(
			"the", "a", "an", "of", "in", "on", "at", "to", "for",
			"with", "by", "from", "and", "or", "but", "very", "really",
			"quite", "just", "some", "any", "this", "that", "these", "those",
		),
		articles: set("the", "a", "an"),
		auxiliaries: set(
			"is", "are", "was", "were", "am", "be", "been",
			"do", "does", "did", "can", "could", "will", "would",
			"shall", "should", "may", "might", "must",
		),
		trailingAux:      set("do", "does"),
		capabilityModals: set("can", "could", "able"),
		questionWords: map[string]QuestionKind{
			"who":   QuestionWho,
			"whom":  QuestionWho,
			"whose": QuestionWho,
			"what":  QuestionWhat,
			"how":   QuestionHow,
			"why":   QuestionWhy,
			"where": QuestionWhere,
			"when":  QuestionWhen,
			"which": QuestionWhich,
		},
		questionPhrases: map[string]QuestionKind{},
		conjunctions:    set("and"),
		disjunctions:    set("or"),
		commands: map[string]CommandKind{
			"run":    CommandRun,
			"show":   CommandShow,
			"status": CommandStatus,
			"help":   CommandHelp,
			"quit":   CommandQuit,
			"exit":   CommandQuit,
		},
		goalVerbs: set(
			"learn", "research", "investigate", "monitor", "track",
			"find", "explore", "study",
		),
		goalConnectors: set("about", "out", "more", "the"),

		patterns: []Pattern{
			{Words: []string{"is", "located", "in"}, Predicate: "located-in", Confidence: 0.95},
			{Words: []string{"is", "part", "of"}, Predicate: "part-of", Confidence: 0.95},
			{Words: []string{"is", "made", "of"}, Predicate: "made-of", Confidence: 0.9},
			{Words: []string{"is", "known", "as"}, Predicate: "known-as", Confidence: 0.9},
			{Words: []string{"is", "a"}, Predicate: "is-a", Confidence: 0.95},
			{Words: []string{"is", "an"}, Predicate: "is-a", Confidence: 0.95},
			{Words: []string{"refers", "to"}, Predicate: "refers-to", Confidence: 0.9},
			{Words: []string{"lives", "in"}, Predicate: "lives-in", Confidence: 0.9},
			{Words: []string{"works", "at"}, Predicate: "works-at", Confidence: 0.9},
			{Words: []string{"belongs", "to"}, Predicate: "belongs-to", Confidence: 0.85},
			{Words: []string{"leads", "to"}, Predicate: "causes", Confidence: 0.7},
			{Words: []string{"are"}, Predicate: "is-a", Confidence: 0.85},
			{Words: []string{"is"}, Predicate: "is-a", Confidence: 0.75},
			{Words: []string{"has"}, Predicate: "has", Confidence: 0.85},
			{Words: []string{"have"}, Predicate: "has", Confidence: 0.85},
			{Words: []string{"can"}, Predicate: "can-do", Confidence: 0.85},
			{Words: []string{"knows"}, Predicate: "knows", Confidence: 0.85},
			{Words: []string{"wants"}, Predicate: "wants", Confidence: 0.8},
			{Words: []string{"causes"}, Predicate: "causes", Confidence: 0.85},
			{Words: []string{"means"}, Predicate: "means", Confidence: 0.85},
		},
	}
}

func set(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}
