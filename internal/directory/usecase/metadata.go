package usecase

import (
	"context"
	"sort"
	"strings"

	"climate-srv/internal/directory"
)

// Demo metadata served while the directory collaborator is unconfigured.
var (
	demoDepartments = []string{"IT", "Ventas", "RRHH", "Mercadeo", "Finanzas", "Contabilidad"}
	demoCountries   = []string{"Colombia", "Panama", "Ecuador"}
)

// Values always present in the filter metadata even when no directory
// user carries them yet.
var (
	extraDepartments = []string{"RRHH", "Mercadeo", "Finanzas", "Contabilidad"}
	extraCountries   = []string{"Panama", "Ecuador"}
)

var accentFolder = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
	"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u", "Ü", "u", "Ñ", "n",
)

func (uc *implUseCase) GetMetadata(ctx context.Context) (directory.Metadata, error) {
	if !uc.conn.Ready(ctx) {
		return directory.Metadata{
			Departments: append([]string{}, demoDepartments...),
			Countries:   append([]string{}, demoCountries...),
		}, nil
	}

	graph, err := uc.conn.Graph(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "directory: building graph client: %v, serving demo metadata", err)
		return demoMetadata(), nil
	}
	users, err := graph.ListUsers(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "directory: listing users: %v, serving demo metadata", err)
		return demoMetadata(), nil
	}

	departments := newValueSet(extraDepartments)
	countries := newValueSet(extraCountries)
	for _, user := range users {
		departments.add(user.Department)
		countries.add(user.Country)
	}

	return directory.Metadata{
		Departments: departments.sorted(),
		Countries:   countries.sorted(),
	}, nil
}

func demoMetadata() directory.Metadata {
	return directory.Metadata{
		Departments: append([]string{}, demoDepartments...),
		Countries:   append([]string{}, demoCountries...),
	}
}

// valueSet deduplicates values case- and accent-insensitively while
// keeping the first spelling seen.
type valueSet struct {
	values map[string]string
}

func newValueSet(seed []string) *valueSet {
	s := &valueSet{values: map[string]string{}}
	for _, v := range seed {
		s.add(v)
	}
	return s
}

func (s *valueSet) add(raw string) {
	value := normalizeValue(raw)
	if value == "" {
		return
	}
	key := foldKey(value)
	// the dashboard has no organizational presence in Peru
	if key == "peru" {
		return
	}
	if _, ok := s.values[key]; !ok {
		s.values[key] = value
	}
}

func (s *valueSet) sorted() []string {
	out := make([]string, 0, len(s.values))
	for _, v := range s.values {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// normalizeValue trims and title-cases a directory value. Short
// all-caps values (IT, RRHH) are kept as written.
func normalizeValue(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}
	if value == strings.ToUpper(value) && len([]rune(value)) <= 4 {
		return value
	}
	words := strings.Fields(strings.ToLower(value))
	for i, w := range words {
		r := []rune(w)
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

func foldKey(value string) string {
	return accentFolder.Replace(strings.ToLower(value))
}
