package extract

import "strings"

// skillVocabulary is the closed list of recognized skill terms.
// Matching against a fixed vocabulary trades recall for precision:
// anything outside this list only enters the skill set through the
// noun-harvest pass, which is filtered hard below.
var skillVocabulary = []string{
	"python", "java", "javascript", "c++", "c#", "sql", "html", "css", "node.js",
	"react", "angular", "vue.js", "django", "flask", "spring", "hibernate",
	"aws", "azure", "gcp", "docker", "kubernetes", "git", "github", "gitlab",
	"mysql", "postgresql", "mongodb", "redis", "tensorflow", "pytorch",
	"machine learning", "data science", "ai", "cloud", "devops", "agile",
	"scrum", "rest api", "graphql",
	"big data", "hadoop", "spark", "etl", "data warehousing",
	"docker-compose", "jenkins", "circleci", "github actions",
	"terraform", "ansible", "kafka", "rabbitmq", "elasticsearch",
	"kibana", "grafana", "prometheus", "nginx", "apache", "tomcat",
	"k8s", "linux", "windows", "bash", "powershell", "api", "restful",
}

// englishStopwords is the standard English stopword list (NLTK set).
var englishStopwords = toSet([]string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you",
	"you're", "you've", "you'll", "you'd", "your", "yours", "yourself",
	"yourselves", "he", "him", "his", "himself", "she", "she's", "her",
	"hers", "herself", "it", "it's", "its", "itself", "they", "them",
	"their", "theirs", "themselves", "what", "which", "who", "whom",
	"this", "that", "that'll", "these", "those", "am", "is", "are",
	"was", "were", "be", "been", "being", "have", "has", "had",
	"having", "do", "does", "did", "doing", "a", "an", "the", "and",
	"but", "if", "or", "because", "as", "until", "while", "of", "at",
	"by", "for", "with", "about", "against", "between", "into",
	"through", "during", "before", "after", "above", "below", "to",
	"from", "up", "down", "in", "out", "on", "off", "over", "under",
	"again", "further", "then", "once", "here", "there", "when",
	"where", "why", "how", "all", "any", "both", "each", "few", "more",
	"most", "other", "some", "such", "no", "nor", "not", "only", "own",
	"same", "so", "than", "too", "very", "s", "t", "can", "will",
	"just", "don", "don't", "should", "should've", "now", "d", "ll",
	"m", "o", "re", "ve", "y", "ain", "aren", "aren't", "couldn",
	"couldn't", "didn", "didn't", "doesn", "doesn't", "hadn", "hadn't",
	"hasn", "hasn't", "haven", "haven't", "isn", "isn't", "ma",
	"mightn", "mightn't", "mustn", "mustn't", "needn", "needn't",
	"shan", "shan't", "shouldn", "shouldn't", "wasn", "wasn't",
	"weren", "weren't", "won", "won't", "wouldn", "wouldn't",
})

// Exclusion lists for the noun-harvest pass. These filter the false
// positives free-form noun extraction produces on resumes; together
// with the stopword list they are part of the extraction contract.
var (
	resumeBoilerplate = toSet([]string{
		"experience", "skills", "work", "team", "tasks",
		"performance", "solutions", "applications", "software",
		"data", "queries", "components", "systems", "database",
		"present", "jan", "feb", "mar", "apr", "may", "jun",
		"jul", "aug", "sep", "oct", "nov", "dec",
	})

	locationNoise = toSet([]string{
		"san", "los", "angeles", "francisco", "inc", "byteworks",
		"technova", "john", "doe",
	})

	commonVerbs = toSet([]string{
		"wrote", "collaborated", "developed", "designed",
		"implemented", "maintained", "tested", "analyzed",
	})

	genericTechTerms = toSet([]string{
		"web", "frontend", "backend", "full", "stack",
		"api", "apis", "database", "queries", "performance",
	})

	genericProjectWords = toSet([]string{
		"project", "pipeline", "storage", "methodology",
		"framework", "platform", "application", "system",
	})
)

func toSet(words []string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// IsStopword reports whether the lowercased token is an English stopword.
func IsStopword(token string) bool {
	_, ok := englishStopwords[token]
	return ok
}

// isExcludedNoun reports whether a noun candidate falls into any of
// the exclusion lists.
func isExcludedNoun(token string) bool {
	for _, set := range []map[string]struct{}{
		resumeBoilerplate, locationNoise, commonVerbs,
		genericTechTerms, genericProjectWords,
	} {
		if _, ok := set[token]; ok {
			return true
		}
	}
	return false
}

// tokenize lowercases text and splits it into tokens, keeping the
// characters that appear inside technical terms ("c++", "c#",
// "node.js", "docker-compose") attached to their token.
func tokenize(text string) []string {
	text = strings.ToLower(text)
	fields := strings.FieldsFunc(text, func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return false
		case r == '+' || r == '#' || r == '.' || r == '-':
			return false
		}
		return true
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".-")
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
