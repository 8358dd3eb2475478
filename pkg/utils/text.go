package utils

import "strings"

// ContainsAny verifica, sem diferenciar maiúsculas, se algum dos termos aparece no texto
func ContainsAny(text string, terms ...string) bool {
	lower := strings.ToLower(text)
	for _, term := range terms {
		if term != "" && strings.Contains(lower, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

// LookupFold busca uma chave ignorando maiúsculas e espaços nas pontas
func LookupFold[V any](table map[string]V, key string) (V, bool) {
	key = strings.TrimSpace(key)
	if v, ok := table[key]; ok {
		return v, true
	}
	for k, v := range table {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	var zero V
	return zero, false
}
