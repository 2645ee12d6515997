package entity

// eq builds one equivalence entry. Alias order is Spanish, French,
// German, Russian; forms identical to the canonical name are omitted.
func eq(canonical string, aliases ...string) Entry {
	return Entry{Canonical: canonical, Aliases: aliases}
}

// defaultEntries is the built-in cross-lingual equivalence table.
// Canonical names are English. Where one foreign form serves two
// English words (fr "histoire", ru "мир") the form is listed under a
// single canonical so lookups stay deterministic.
var defaultEntries = []Entry{
	// Countries.
	eq("Russia", "Rusia", "Russie", "Russland", "Россия"),
	eq("Germany", "Alemania", "Allemagne", "Deutschland", "Германия"),
	eq("France", "Francia", "Frankreich", "Франция"),
	eq("Spain", "España", "Espagne", "Spanien", "Испания"),
	eq("England", "Inglaterra", "Angleterre", "Англия"),
	eq("United States", "Estados Unidos", "États-Unis", "Vereinigte Staaten", "США", "USA", "America"),
	eq("China", "Chine", "Китай"),
	eq("Japan", "Japón", "Japon", "Япония"),
	eq("Italy", "Italia", "Italie", "Italien", "Италия"),
	eq("Greece", "Grecia", "Grèce", "Griechenland", "Греция"),
	eq("Egypt", "Egipto", "Égypte", "Ägypten", "Египет"),
	eq("India", "Inde", "Indien", "Индия"),
	eq("Brazil", "Brasil", "Brésil", "Brasilien", "Бразилия"),
	eq("Mexico", "México", "Mexique", "Mexiko", "Мексика"),
	eq("Canada", "Canadá", "Kanada", "Канада"),
	eq("Poland", "Polonia", "Pologne", "Polen", "Польша"),
	eq("Austria", "Autriche", "Österreich", "Австрия"),
	eq("Switzerland", "Suiza", "Suisse", "Schweiz", "Швейцария"),
	eq("Netherlands", "Países Bajos", "Pays-Bas", "Niederlande", "Нидерланды"),
	eq("Portugal", "Португалия"),
	eq("Sweden", "Suecia", "Suède", "Schweden", "Швеция"),
	eq("Norway", "Noruega", "Norvège", "Norwegen", "Норвегия"),
	eq("Turkey", "Turquía", "Turquie", "Türkei", "Турция"),
	eq("Ireland", "Irlanda", "Irlande", "Irland", "Ирландия"),
	eq("Ukraine", "Ucrania", "Украина"),
	eq("Belgium", "Bélgica", "Belgique", "Belgien", "Бельгия"),
	eq("Finland", "Finlandia", "Finlande", "Finnland", "Финляндия"),
	eq("Denmark", "Dinamarca", "Danemark", "Dänemark", "Дания"),
	eq("Hungary", "Hungría", "Hongrie", "Ungarn", "Венгрия"),
	eq("Scotland", "Escocia", "Écosse", "Schottland", "Шотландия"),

	// Cities.
	eq("Moscow", "Moscú", "Moscou", "Moskau", "Москва"),
	eq("London", "Londres", "Лондон"),
	eq("Paris", "París", "Париж"),
	eq("Berlin", "Berlín", "Берлин"),
	eq("Madrid", "Мадрид"),
	eq("Rome", "Roma", "Rom", "Рим"),
	eq("Vienna", "Viena", "Vienne", "Wien", "Вена"),
	eq("Athens", "Atenas", "Athènes", "Athen", "Афины"),
	eq("Lisbon", "Lisboa", "Lisbonne", "Lissabon", "Лиссабон"),
	eq("Warsaw", "Varsovia", "Varsovie", "Warschau", "Варшава"),
	eq("Prague", "Praga", "Prag", "Прага"),
	eq("Munich", "Múnich", "München", "Мюнхен"),
	eq("Cologne", "Colonia", "Köln", "Кёльн"),
	eq("Geneva", "Ginebra", "Genève", "Genf", "Женева"),
	eq("Brussels", "Bruselas", "Bruxelles", "Brüssel", "Брюссель"),
	eq("Copenhagen", "Copenhague", "Kopenhagen", "Копенгаген"),
	eq("Stockholm", "Estocolmo", "Стокгольм"),
	eq("New York", "Nueva York", "Нью-Йорк"),
	eq("Saint Petersburg", "San Petersburgo", "Saint-Pétersbourg", "Sankt Petersburg", "Санкт-Петербург"),
	eq("Kyiv", "Kiev", "Kiew", "Киев"),
	eq("Venice", "Venecia", "Venise", "Venedig", "Венеция"),
	eq("Florence", "Florencia", "Florenz", "Флоренция"),
	eq("Naples", "Nápoles", "Neapel", "Неаполь"),
	eq("Seville", "Sevilla", "Séville", "Севилья"),
	eq("Cairo", "El Cairo", "Le Caire", "Kairo", "Каир"),
	eq("Jerusalem", "Jerusalén", "Jérusalem", "Иерусалим"),

	// Elements and weather.
	eq("water", "agua", "eau", "Wasser", "вода"),
	eq("fire", "fuego", "feu", "Feuer", "огонь"),
	eq("earth", "tierra", "terre", "Erde", "земля"),
	eq("air", "aire", "Luft", "воздух"),
	eq("sun", "sol", "soleil", "Sonne", "солнце"),
	eq("moon", "luna", "lune", "Mond", "луна"),
	eq("star", "estrella", "étoile", "Stern", "звезда"),
	eq("sky", "cielo", "ciel", "Himmel", "небо"),
	eq("sea", "mar", "mer", "Meer", "море"),
	eq("river", "río", "fleuve", "Fluss", "река"),
	eq("lake", "lago", "lac", "See", "озеро"),
	eq("mountain", "montaña", "montagne", "Berg", "гора"),
	eq("forest", "bosque", "forêt", "Wald", "лес"),
	eq("tree", "árbol", "arbre", "Baum", "дерево"),
	eq("flower", "flor", "fleur", "Blume", "цветок"),
	eq("grass", "hierba", "herbe", "Gras", "трава"),
	eq("stone", "piedra", "pierre", "Stein", "камень"),
	eq("sand", "arena", "sable", "Sand", "песок"),
	eq("rain", "lluvia", "pluie", "Regen", "дождь"),
	eq("snow", "nieve", "neige", "Schnee", "снег"),
	eq("wind", "viento", "vent", "Wind", "ветер"),
	eq("ice", "hielo", "glace", "Eis", "лёд"),
	eq("storm", "tormenta", "tempête", "Sturm", "буря"),
	eq("cloud", "nube", "nuage", "Wolke", "облако"),
	eq("light", "luz", "lumière", "Licht", "свет"),
	eq("shadow", "sombra", "ombre", "Schatten", "тень"),
	eq("day", "día", "jour", "Tag", "день"),
	eq("night", "noche", "nuit", "Nacht", "ночь"),
	eq("morning", "matin", "Morgen", "утро"),
	eq("evening", "tarde", "soir", "Abend", "вечер"),
	eq("summer", "verano", "été", "Sommer", "лето"),
	eq("winter", "invierno", "hiver", "Winter", "зима"),
	eq("spring", "primavera", "printemps", "Frühling", "весна"),
	eq("autumn", "otoño", "automne", "Herbst", "осень"),

	// Animals.
	eq("dog", "perro", "chien", "Hund", "собака"),
	eq("cat", "gato", "chat", "Katze", "кошка"),
	eq("horse", "caballo", "cheval", "Pferd", "лошадь"),
	eq("bird", "pájaro", "oiseau", "Vogel", "птица"),
	eq("fish", "pez", "poisson", "Fisch", "рыба"),
	eq("wolf", "lobo", "loup", "Wolf", "волк"),
	eq("bear", "oso", "ours", "Bär", "медведь"),
	eq("lion", "león", "Löwe", "лев"),
	eq("cow", "vaca", "vache", "Kuh", "корова"),
	eq("sheep", "oveja", "mouton", "Schaf", "овца"),
	eq("mouse", "ratón", "souris", "Maus", "мышь"),
	eq("snake", "serpiente", "serpent", "Schlange", "змея"),
	eq("eagle", "águila", "aigle", "Adler", "орёл"),
	eq("whale", "ballena", "baleine", "Wal", "кит"),

	// People and kinship.
	eq("man", "hombre", "homme", "Mann", "мужчина"),
	eq("woman", "mujer", "femme", "Frau", "женщина"),
	eq("child", "niño", "enfant", "Kind", "ребёнок"),
	eq("king", "rey", "roi", "König", "король"),
	eq("queen", "reina", "reine", "Königin", "королева"),
	eq("teacher", "maestro", "professeur", "Lehrer", "учитель"),
	eq("student", "estudiante", "étudiant", "Student", "студент"),
	eq("doctor", "médico", "médecin", "Arzt", "врач"),
	eq("soldier", "soldado", "soldat", "Soldat", "солдат"),
	eq("farmer", "agricultor", "paysan", "Bauer", "крестьянин"),
	eq("friend", "amigo", "ami", "Freund", "друг"),
	eq("enemy", "enemigo", "ennemi", "Feind", "враг"),
	eq("family", "familia", "famille", "Familie", "семья"),
	eq("mother", "madre", "mère", "Mutter", "мать"),
	eq("father", "padre", "père", "Vater", "отец"),
	eq("brother", "hermano", "frère", "Bruder", "брат"),
	eq("sister", "hermana", "sœur", "Schwester", "сестра"),
	eq("son", "hijo", "fils", "Sohn", "сын"),
	eq("daughter", "hija", "Tochter", "дочь"),
	eq("poet", "poeta", "poète", "Dichter", "поэт"),

	// Built places and objects.
	eq("city", "ciudad", "ville", "Stadt", "город"),
	eq("village", "pueblo", "Dorf", "деревня"),
	eq("house", "casa", "maison", "Haus", "дом"),
	eq("school", "escuela", "école", "Schule", "школа"),
	eq("church", "iglesia", "église", "Kirche", "церковь"),
	eq("castle", "castillo", "château", "Schloss", "замок"),
	eq("bridge", "puente", "pont", "Brücke", "мост"),
	eq("road", "camino", "route", "Straße", "дорога"),
	eq("garden", "jardín", "jardin", "Garten", "сад"),
	eq("market", "mercado", "marché", "Markt", "рынок"),
	eq("library", "biblioteca", "bibliothèque", "Bibliothek", "библиотека"),
	eq("hospital", "hôpital", "Krankenhaus", "больница"),
	eq("door", "puerta", "porte", "Tür", "дверь"),
	eq("window", "ventana", "fenêtre", "Fenster", "окно"),
	eq("table", "mesa", "Tisch", "стол"),
	eq("chair", "silla", "chaise", "Stuhl", "стул"),
	eq("key", "llave", "clé", "Schlüssel", "ключ"),
	eq("knife", "cuchillo", "couteau", "Messer", "нож"),
	eq("clock", "reloj", "horloge", "Uhr", "часы"),
	eq("ship", "barco", "navire", "Schiff", "корабль"),
	eq("train", "tren", "Zug", "поезд"),
	eq("car", "coche", "voiture", "Auto", "машина"),
	eq("airplane", "avión", "avion", "Flugzeug", "самолёт"),
	eq("bicycle", "bicicleta", "vélo", "Fahrrad", "велосипед"),

	// Food and drink.
	eq("bread", "pan", "pain", "Brot", "хлеб"),
	eq("milk", "leche", "lait", "Milch", "молоко"),
	eq("wine", "vino", "vin", "Wein", "вино"),
	eq("beer", "cerveza", "bière", "Bier", "пиво"),
	eq("meat", "carne", "viande", "Fleisch", "мясо"),
	eq("cheese", "queso", "fromage", "Käse", "сыр"),
	eq("apple", "manzana", "pomme", "Apfel", "яблоко"),
	eq("salt", "sal", "sel", "Salz", "соль"),
	eq("sugar", "azúcar", "sucre", "Zucker", "сахар"),
	eq("tea", "té", "thé", "Tee", "чай"),
	eq("coffee", "café", "Kaffee", "кофе"),
	eq("egg", "huevo", "œuf", "Ei", "яйцо"),
	eq("honey", "miel", "Honig", "мёд"),

	// Body and materials.
	eq("heart", "corazón", "cœur", "Herz", "сердце"),
	eq("hand", "mano", "main", "Hand", "рука"),
	eq("head", "cabeza", "tête", "Kopf", "голова"),
	eq("eye", "ojo", "œil", "Auge", "глаз"),
	eq("blood", "sangre", "sang", "Blut", "кровь"),
	eq("bone", "hueso", "os", "Knochen", "кость"),
	eq("gold", "oro", "or", "Gold", "золото"),
	eq("silver", "plata", "argent", "Silber", "серебро"),
	eq("iron", "hierro", "fer", "Eisen", "железо"),
	eq("wood", "madera", "bois", "Holz", "древесина"),
	eq("glass", "vidrio", "verre", "Glas", "стекло"),
	eq("paper", "papel", "papier", "Papier", "бумага"),
	eq("money", "dinero", "Geld", "деньги"),

	// Abstractions.
	eq("truth", "verdad", "vérité", "Wahrheit", "истина"),
	eq("justice", "justicia", "Gerechtigkeit", "справедливость"),
	eq("virtue", "virtud", "vertu", "Tugend", "добродетель"),
	eq("wisdom", "sabiduría", "sagesse", "Weisheit", "мудрость"),
	eq("knowledge", "conocimiento", "connaissance", "Wissen", "знание"),
	eq("beauty", "belleza", "beauté", "Schönheit", "красота"),
	eq("love", "amor", "amour", "Liebe", "любовь"),
	eq("death", "muerte", "mort", "Tod", "смерть"),
	eq("life", "vida", "vie", "Leben", "жизнь"),
	eq("time", "tiempo", "temps", "Zeit", "время"),
	eq("freedom", "libertad", "liberté", "Freiheit", "свобода"),
	eq("power", "poder", "pouvoir", "Macht", "власть"),
	eq("soul", "alma", "âme", "Seele", "душа"),
	eq("mind", "mente", "esprit", "Geist", "разум"),
	eq("dream", "sueño", "rêve", "Traum", "мечта"),
	eq("hope", "esperanza", "espoir", "Hoffnung", "надежда"),
	eq("fear", "miedo", "peur", "Angst", "страх"),
	eq("joy", "alegría", "joie", "Freude", "радость"),
	eq("memory", "memoria", "mémoire", "Gedächtnis", "память"),
	eq("nature", "naturaleza", "Natur", "природа"),
	eq("world", "mundo", "monde", "Welt"),
	eq("war", "guerra", "guerre", "Krieg", "война"),
	eq("peace", "paz", "paix", "Frieden", "мир"),
	eq("law", "ley", "loi", "Gesetz", "закон"),
	eq("language", "idioma", "langue", "Sprache", "язык"),
	eq("word", "palabra", "mot", "Wort", "слово"),
	eq("book", "libro", "livre", "Buch", "книга"),
	eq("letter", "carta", "lettre", "Brief", "письмо"),
	eq("music", "música", "musique", "Musik", "музыка"),
	eq("art", "arte", "Kunst", "искусство"),
	eq("science", "ciencia", "Wissenschaft", "наука"),
	eq("history", "historia", "histoire", "Geschichte", "история"),
	eq("story", "cuento", "récit", "Erzählung", "рассказ"),
	eq("philosophy", "filosofía", "philosophie", "Philosophie", "философия"),
	eq("question", "pregunta", "Frage", "вопрос"),
	eq("answer", "respuesta", "réponse", "Antwort", "ответ"),
	eq("number", "número", "Zahl", "число"),
	eq("name", "nombre", "nom", "имя"),
	eq("god", "dios", "dieu", "Gott", "бог"),

	// Historical figures.
	eq("Socrates", "Sócrates", "Socrate", "Sokrates", "Сократ"),
	eq("Plato", "Platón", "Platon", "Платон"),
	eq("Aristotle", "Aristóteles", "Aristote", "Aristoteles", "Аристотель"),
	eq("Homer", "Homero", "Homère", "Гомер"),
	eq("Caesar", "César", "Cäsar", "Цезарь"),
	eq("Napoleon", "Napoleón", "Napoléon", "Наполеон"),
	eq("Newton", "Ньютон"),
	eq("Einstein", "Эйнштейн"),
	eq("Shakespeare", "Шекспир"),
	eq("Tolstoy", "Tolstói", "Tolstoï", "Tolstoi", "Толстой"),
	eq("Dostoevsky", "Dostoievski", "Dostoïevski", "Dostojewski", "Достоевский"),
	eq("Kant", "Кант"),
	eq("Goethe", "Гёте"),
	eq("Cervantes", "Сервантес"),
	eq("Voltaire", "Вольтер"),
	eq("Pushkin", "Pouchkine", "Puschkin", "Пушкин"),
	eq("Leonardo da Vinci", "Léonard de Vinci", "Леонардо да Винчи"),
	eq("Mozart", "Моцарт"),
	eq("Beethoven", "Бетховен"),
	eq("Columbus", "Colón", "Colomb", "Kolumbus", "Колумб"),
}
