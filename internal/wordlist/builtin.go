package wordlist

import "github.com/abhisek/lexis/internal/difficulty"

// builtin holds the bundled lists, built once in init().
var builtin *StaticCatalog

func init() {
	builtin = NewStaticCatalog(builtinLists())
}

func tiers(beginner, intermediate, advanced []string) map[difficulty.Level][]string {
	return map[difficulty.Level][]string{
		difficulty.Beginner:     beginner,
		difficulty.Intermediate: intermediate,
		difficulty.Advanced:     advanced,
	}
}

func builtinLists() map[string]Lists {
	return map[string]Lists{
		"es": {
			Tiers: tiers(
				[]string{"hola", "casa", "agua", "perro", "gato", "comer", "libro", "amigo", "familia", "día",
					"noche", "sol", "mesa", "madre", "padre", "niño", "escuela", "grande", "pequeño", "feliz"},
				[]string{"ciudad", "trabajo", "tiempo", "pregunta", "respuesta", "viaje", "camino", "cocina", "mercado", "dinero",
					"semana", "invierno", "verano", "pensar", "recordar", "necesitar", "cerca", "lejos", "temprano", "siempre"},
				[]string{"desarrollo", "conocimiento", "sin embargo", "aprovechar", "acontecimiento", "desafío", "entorno", "imprescindible", "lograr", "plantear",
					"rendimiento", "ámbito", "juicio", "herramienta", "sostenible", "investigación", "matiz", "alcanzar", "propuesta", "convivencia"},
			),
			Emergency: []string{"hola", "gracias", "agua", "casa", "sí", "no", "bueno", "amigo"},
		},
		"fr": {
			Tiers: tiers(
				[]string{"bonjour", "maison", "eau", "chien", "chat", "manger", "livre", "ami", "famille", "jour",
					"nuit", "soleil", "table", "mère", "père", "enfant", "école", "grand", "petit", "heureux"},
				[]string{"ville", "travail", "temps", "question", "réponse", "voyage", "chemin", "cuisine", "marché", "argent",
					"semaine", "hiver", "été", "penser", "souvenir", "besoin", "près", "loin", "tôt", "toujours"},
				[]string{"développement", "connaissance", "cependant", "profiter", "événement", "défi", "environnement", "indispensable", "réussir", "soulever",
					"rendement", "domaine", "jugement", "outil", "durable", "recherche", "nuance", "atteindre", "proposition", "bienveillance"},
			),
			Emergency: []string{"bonjour", "merci", "eau", "maison", "oui", "non", "bon", "ami"},
		},
		"de": {
			Tiers: tiers(
				[]string{"hallo", "haus", "wasser", "hund", "katze", "essen", "buch", "freund", "familie", "tag",
					"nacht", "sonne", "tisch", "mutter", "vater", "kind", "schule", "groß", "klein", "glücklich"},
				[]string{"stadt", "arbeit", "zeit", "frage", "antwort", "reise", "weg", "küche", "markt", "geld",
					"woche", "winter", "sommer", "denken", "erinnern", "brauchen", "nah", "weit", "früh", "immer"},
				[]string{"entwicklung", "kenntnis", "allerdings", "ausnutzen", "ereignis", "herausforderung", "umgebung", "unerlässlich", "erreichen", "aufwerfen",
					"leistung", "bereich", "urteil", "werkzeug", "nachhaltig", "forschung", "feinheit", "gelingen", "vorschlag", "zusammenleben"},
			),
			Emergency: []string{"hallo", "danke", "wasser", "haus", "ja", "nein", "gut", "freund"},
		},
		"it": {
			Tiers: tiers(
				[]string{"ciao", "casa", "acqua", "cane", "gatto", "mangiare", "libro", "amico", "famiglia", "giorno",
					"notte", "sole", "tavolo", "madre", "padre", "bambino", "scuola", "grande", "piccolo", "felice"},
				[]string{"città", "lavoro", "tempo", "domanda", "risposta", "viaggio", "strada", "cucina", "mercato", "soldi",
					"settimana", "inverno", "estate", "pensare", "ricordare", "bisogno", "vicino", "lontano", "presto", "sempre"},
				[]string{"sviluppo", "conoscenza", "tuttavia", "approfittare", "avvenimento", "sfida", "ambiente", "indispensabile", "raggiungere", "sollevare",
					"rendimento", "ambito", "giudizio", "strumento", "sostenibile", "ricerca", "sfumatura", "conseguire", "proposta", "convivenza"},
			),
			Emergency: []string{"ciao", "grazie", "acqua", "casa", "sì", "no", "buono", "amico"},
		},
		"pt": {
			Tiers: tiers(
				[]string{"olá", "casa", "água", "cachorro", "gato", "comer", "livro", "amigo", "família", "dia",
					"noite", "sol", "mesa", "mãe", "pai", "criança", "escola", "grande", "pequeno", "feliz"},
				[]string{"cidade", "trabalho", "tempo", "pergunta", "resposta", "viagem", "caminho", "cozinha", "mercado", "dinheiro",
					"semana", "inverno", "verão", "pensar", "lembrar", "precisar", "perto", "longe", "cedo", "sempre"},
				[]string{"desenvolvimento", "conhecimento", "no entanto", "aproveitar", "acontecimento", "desafio", "ambiente", "imprescindível", "alcançar", "levantar",
					"desempenho", "âmbito", "juízo", "ferramenta", "sustentável", "pesquisa", "matiz", "atingir", "proposta", "convivência"},
			),
			Emergency: []string{"olá", "obrigado", "água", "casa", "sim", "não", "bom", "amigo"},
		},
		"en": {
			Tiers: tiers(
				[]string{"hello", "house", "water", "dog", "cat", "eat", "book", "friend", "family", "day",
					"night", "sun", "table", "mother", "father", "child", "school", "big", "small", "happy"},
				[]string{"city", "work", "time", "question", "answer", "journey", "road", "kitchen", "market", "money",
					"week", "winter", "summer", "think", "remember", "need", "near", "far", "early", "always"},
				[]string{"development", "knowledge", "however", "leverage", "occurrence", "challenge", "environment", "indispensable", "achieve", "raise",
					"performance", "scope", "judgement", "tool", "sustainable", "research", "nuance", "attain", "proposal", "coexistence"},
			),
			Emergency: []string{"hello", "thanks", "water", "house", "yes", "no", "good", "friend"},
		},
	}
}
