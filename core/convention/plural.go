package convention

import "strings"

// irregular maps singular words to plurals that no rule covers.
var irregular = map[string]string{
	"person": "people",
	"child":  "children",
	"man":    "men",
	"woman":  "women",
	"mouse":  "mice",
	"index":  "indices",
	"status": "statuses",
	"datum":  "data",
	"schema": "schemas",
}

// Pluralize returns the plural form of a word using simple English rules.
func Pluralize(word string) string {
	if word == "" {
		return ""
	}

	if plural, ok := irregular[strings.ToLower(word)]; ok {
		if word[0] >= 'A' && word[0] <= 'Z' {
			return strings.ToUpper(plural[:1]) + plural[1:]
		}
		return plural
	}

	lower := strings.ToLower(word)

	switch {
	case strings.HasSuffix(lower, "s"),
		strings.HasSuffix(lower, "x"),
		strings.HasSuffix(lower, "z"),
		strings.HasSuffix(lower, "ch"),
		strings.HasSuffix(lower, "sh"):
		return word + "es"

	case strings.HasSuffix(lower, "y") && len(word) > 1 && !isVowel(rune(lower[len(lower)-2])):
		return word[:len(word)-1] + "ies"

	case strings.HasSuffix(lower, "fe"):
		return word[:len(word)-2] + "ves"

	case strings.HasSuffix(lower, "f"):
		return word[:len(word)-1] + "ves"
	}

	return word + "s"
}

// Singularize returns the singular form of a word. Inverse of Pluralize.
func Singularize(word string) string {
	if word == "" {
		return ""
	}

	lower := strings.ToLower(word)

	for singular, plural := range irregular {
		if plural == lower {
			if word[0] >= 'A' && word[0] <= 'Z' {
				return strings.ToUpper(singular[:1]) + singular[1:]
			}
			return singular
		}
	}

	switch {
	case strings.HasSuffix(lower, "ies"):
		return word[:len(word)-3] + "y"

	case strings.HasSuffix(lower, "ves"):
		return word[:len(word)-3] + "f"

	case strings.HasSuffix(lower, "ses"),
		strings.HasSuffix(lower, "xes"),
		strings.HasSuffix(lower, "zes"),
		strings.HasSuffix(lower, "ches"),
		strings.HasSuffix(lower, "shes"):
		return word[:len(word)-2]

	case strings.HasSuffix(lower, "s") && !strings.HasSuffix(lower, "ss"):
		return word[:len(word)-1]
	}

	return word
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
