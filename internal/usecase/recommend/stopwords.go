package recommend

// stopwords combines the Czech and English stop-word sets. The catalog
// holds bilingual metadata, so both sets apply to every document. Matching
// happens before diacritics folding, hence the accented Czech entries.
var stopwords = buildStopwords(czechStopwords, englishStopwords)

func buildStopwords(sets ...[]string) map[string]struct{} {
	m := make(map[string]struct{})
	for _, set := range sets {
		for _, w := range set {
			m[w] = struct{}{}
		}
	}
	return m
}

var czechStopwords = []string{
	"a", "aby", "ale", "ani", "ano", "asi", "az", "až", "bez", "bude",
	"budem", "budes", "budeš", "by", "byl", "byla", "byli", "bylo", "být",
	"byt", "ci", "či", "clanek", "článek", "co", "coz", "což", "cz", "dalsi",
	"další", "do", "ho", "i", "j", "jak", "jake", "jaké", "jako", "je",
	"jeho", "jej", "jeji", "její", "jejich", "jen", "jenz", "jenž", "jeste",
	"ještě", "ji", "jine", "jiné", "jiz", "již", "jsem", "jses", "jseš",
	"jsme", "jsou", "jste", "k", "kam", "kde", "kdo", "kdyz", "když", "ke",
	"ktera", "která", "ktere", "které", "kteri", "kteří", "ktery", "který",
	"ku", "ma", "má", "mate", "máte", "me", "mé", "mezi", "mi", "mit", "mít",
	"muj", "můj", "muze", "může", "my", "na", "nad", "nam", "nám", "napiste",
	"napište", "nas", "nás", "nasi", "naši", "ne", "nebo", "nejsou", "neni",
	"není", "nez", "než", "ni", "nic", "nove", "nové", "novy", "nový", "o",
	"od", "ode", "on", "pak", "po", "pod", "podle", "pokud", "pouze",
	"prave", "právě", "pred", "před", "pres", "přes", "pri", "při", "pro",
	"proc", "proč", "proto", "protoze", "protože", "prvni", "první", "pta",
	"ptá", "re", "s", "se", "si", "sice", "strana", "sve", "své", "svych",
	"svých", "svym", "svým", "svymi", "svými", "ta", "tak", "take", "také",
	"takze", "takže", "tato", "tedy", "tema", "téma", "ten", "tento", "teto",
	"této", "tim", "tím", "timto", "tímto", "tipy", "to", "tohle", "toho",
	"tohoto", "tom", "tomto", "tomuto", "toto", "tu", "tuto", "ty", "tyto",
	"u", "uz", "už", "v", "vam", "vám", "vas", "váš", "vase", "vaše", "ve",
	"vice", "více", "však", "vsak", "vsechen", "všechen", "vy", "z", "za",
	"zda", "zde", "ze", "zpet", "zpět", "zpravy", "zprávy", "že",
}

var englishStopwords = []string{
	"a", "about", "above", "after", "again", "against", "all", "am", "an",
	"and", "any", "are", "as", "at", "be", "because", "been", "before",
	"being", "below", "between", "both", "but", "by", "can", "did", "do",
	"does", "doing", "down", "during", "each", "few", "for", "from",
	"further", "had", "has", "have", "having", "he", "her", "here", "hers",
	"herself", "him", "himself", "his", "how", "i", "if", "in", "into", "is",
	"it", "its", "itself", "just", "me", "more", "most", "my", "myself",
	"no", "nor", "not", "now", "of", "off", "on", "once", "only", "or",
	"other", "our", "ours", "ourselves", "out", "over", "own", "same",
	"she", "should", "so", "some", "such", "than", "that", "the", "their",
	"theirs", "them", "themselves", "then", "there", "these", "they",
	"this", "those", "through", "to", "too", "under", "until", "up", "very",
	"was", "we", "were", "what", "when", "where", "which", "while", "who",
	"whom", "why", "will", "with", "you", "your", "yours", "yourself",
	"yourselves",
}
