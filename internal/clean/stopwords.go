//    Happico: a HappyDB verbosity and topic analyzer
//    Copyright: E Du 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package clean

import (
	"github.com/elena-du/happico/internal/gen"
)

//
// STOPWORDS
//

// two passes over the corpus: a standard list first, then a broader one; and then a third pass
// with the domain noise terms ("happy", "yesterday", ...) that swamp every frequency table
// without saying anything topical

var (
	// English120 - the standard english stopword set
	English120 = []string{"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you", "your", "yours",
		"yourself", "yourselves", "he", "him", "his", "himself", "she", "her", "hers", "herself", "it", "its",
		"itself", "they", "them", "their", "theirs", "themselves", "what", "which", "who", "whom", "this", "that",
		"these", "those", "am", "is", "are", "was", "were", "be", "been", "being", "have", "has", "had", "having",
		"do", "does", "did", "doing", "a", "an", "the", "and", "but", "if", "or", "because", "as", "until", "while",
		"of", "at", "by", "for", "with", "about", "against", "between", "into", "through", "during", "before",
		"after", "above", "below", "to", "from", "up", "down", "in", "out", "on", "off", "over", "under", "again",
		"further", "then", "once", "here", "there", "when", "where", "why", "how", "all", "any", "both", "each",
		"few", "more", "most", "other", "some", "such", "no", "nor", "not", "only", "own", "same", "so", "than",
		"too", "very", "s", "t", "can", "will", "just", "don", "should", "now"}
	// EnglishExtra - the broader second set; contractions, weak verbs, vague quantities
	EnglishExtra = []string{"im", "ive", "id", "dont", "didnt", "doesnt", "couldnt", "wouldnt", "shouldnt",
		"wasnt", "werent", "isnt", "arent", "havent", "hasnt", "hadnt", "wont", "cant", "cannot", "youre",
		"youve", "hes", "shes", "its", "were", "theyre", "theyve", "thats", "whats", "one", "two", "three",
		"also", "would", "could", "should", "may", "might", "must", "shall", "get", "got", "getting", "go",
		"going", "went", "gone", "come", "came", "make", "made", "take", "took", "thing", "things", "something",
		"anything", "everything", "nothing", "someone", "anyone", "everyone", "lot", "lots", "many", "much",
		"else", "ever", "never", "always", "really", "quite", "rather", "able", "us", "let", "lets", "still",
		"even", "well", "back", "first", "last", "around", "since", "within", "without"}
	// EnglishKeep - members of the lists below we will not toss after all
	EnglishKeep = []string{"love", "new"}
	// NoiseDefaults - happy-moment filler; frequent, sentiment-laden, topically empty
	NoiseDefaults = []string{"happy", "happier", "happiest", "happiness", "day", "days", "time", "times",
		"moment", "moments", "today", "yesterday", "ago", "week", "weeks", "month", "months", "year", "years",
		"finally", "great", "good", "nice", "new", "enjoyed", "feel", "felt", "like", "liked", "love", "loved"}
)

// getprimarystops - the standard list minus the keepers
func getprimarystops() []string {
	return gen.SetSubtraction(append([]string{}, English120...), EnglishKeep)
}

// getsecondarystops - the broader list minus the keepers
func getsecondarystops() []string {
	return gen.SetSubtraction(append([]string{}, EnglishExtra...), EnglishKeep)
}

// getnoisewords - the happy-moment filler minus the keepers
func getnoisewords() []string {
	return gen.SetSubtraction(append([]string{}, NoiseDefaults...), EnglishKeep)
}
