package classifier

import "wikifeed/domain"

// bodyKeywords drive classification of raw article text. A category is
// included as soon as any of its keywords appears as a substring of the
// lower-cased text.
var bodyKeywords = map[domain.Category][]string{
	domain.CategoryScience:    {"physics", "chemistry", "biology", "scientist", "research", "experiment", "scientific", "theory", "discover"},
	domain.CategoryHistory:    {"war", "battle", "century", "ancient", "historic", "dynasty", "empire", "revolt", "treaty"},
	domain.CategoryGeography:  {"country", "city", "river", "mountain", "continent", "island", "region", "capital", "population"},
	domain.CategoryLiterature: {"book", "author", "novel", "poem", "playwright", "wrote", "published", "literary", "fiction"},
	domain.CategoryArts:       {"painting", "sculpture", "music", "film", "artist", "museum", "gallery", "exhibition"},
	domain.CategorySports:     {"game", "player", "team", "championship", "tournament", "league", "score", "match"},
	domain.CategoryPolitics:   {"government", "election", "president", "law", "parliament", "minister", "senate", "congress"},
	domain.CategoryReligion:   {"god", "church", "bible", "religious", "faith", "christian", "islam", "jewish", "temple"},
	domain.CategoryNature:     {"animal", "plant", "species", "ecosystem", "environment", "bird", "fish", "mammal"},
	domain.CategoryTechnology: {"computer", "software", "internet", "engineering", "patent", "invented", "digital"},
	domain.CategoryPeople:     {"born", "died", "biography", "king", "queen", "president", "scientist", "author", "actor"},
}

// biographicalKeywords force-include People even when the main pass missed
// it. Biographies often score under other topics and would otherwise lose
// the People tag entirely.
var biographicalKeywords = []string{
	"born", "died", "king", "queen", "president", "emperor", "scientist", "author", "actor",
}

// externalKeywords map source-supplied topic tags (e.g. Wikipedia category
// titles) onto the taxonomy. Tags are shorter and denser than body text, so
// the sets differ slightly from bodyKeywords.
var externalKeywords = map[domain.Category][]string{
	domain.CategoryScience:    {"science", "scientist", "physics", "chemistry", "biology", "research"},
	domain.CategoryHistory:    {"history", "war", "battle", "century", "ancient", "empire"},
	domain.CategoryGeography:  {"geography", "country", "city", "river", "mountain", "island"},
	domain.CategoryLiterature: {"literature", "book", "author", "novel", "poem", "writer"},
	domain.CategoryArts:       {"art", "painting", "sculpture", "music", "film", "artist"},
	domain.CategorySports:     {"sport", "game", "player", "team", "championship"},
	domain.CategoryPolitics:   {"politics", "government", "president", "minister", "election"},
	domain.CategoryReligion:   {"religion", "god", "church", "faith", "religious"},
	domain.CategoryNature:     {"nature", "animal", "plant", "species", "environment"},
	domain.CategoryTechnology: {"technology", "computer", "software", "internet", "engineering"},
	domain.CategoryPeople:     {"people", "born", "died", "king", "queen", "president"},
}
