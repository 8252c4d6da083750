// Package refdata loads the immutable reference tables the extraction engine
// matches against: the categorized skill vocabulary, the synonym map, the
// phrase blacklist, the soft-skill list, and the major taxonomy.
//
// Tables are embedded at compile time and validated against JSON Schemas at
// load. A missing or invalid table degrades to an empty one with a logged
// warning; Load never fails because of reference data.
package refdata

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"
)

//go:embed resources/*.json
var resourceFiles embed.FS

//go:embed schemas/*.schema.json
var schemaFiles embed.FS

// Resource file names inside resources/.
const (
	skillsFile    = "technical_skills.json"
	synonymsFile  = "skill_synonyms.json"
	blacklistFile = "blacklist.json"
	taxonomyFile  = "major_taxonomy.json"
)

// softSkills are interpersonal skills matched by substring containment.
// They are deliberately not part of the technical vocabulary.
var softSkills = []string{
	"communication", "leadership", "teamwork", "problem solving",
	"time management", "critical thinking", "creativity",
	"adaptability", "work ethic", "interpersonal skills",
	"presentation skills", "analytical skills", "organizational skills",
}

// Store holds every reference table, read-only after Load.
type Store struct {
	// Vocabulary is the flattened lowercase skill vocabulary.
	Vocabulary map[string]struct{}
	// VocabularyTerms is the vocabulary as a sorted slice, longest first,
	// so longer phrases match before their prefixes.
	VocabularyTerms []string
	// Synonyms maps a canonical main term to its alternate surface forms.
	Synonyms map[string][]string
	// Blacklist is the flattened lowercase set of phrases never considered
	// valid skills.
	Blacklist map[string]struct{}
	// SoftSkills is the fixed interpersonal-skill list.
	SoftSkills []string
	// Majors is the flattened lowercase set of taxonomy majors.
	Majors map[string]struct{}
	// MajorList is the taxonomy as an ordered slice for fuzzy containment.
	MajorList []string
}

// Options configure loading. An empty Options loads the embedded tables.
type Options struct {
	// Dir, when set, loads resource files from this directory instead of
	// the embedded copies. Files absent from the directory degrade to
	// empty tables, matching the embedded behavior.
	Dir string
	// Logger receives warnings for missing or invalid tables. Nil means
	// no logging.
	Logger *zap.Logger
}

// Load builds the reference Store. It never returns an error caused by a
// missing or malformed table; those degrade to empty tables with a warning.
func Load(opts Options) *Store {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	s := &Store{
		Vocabulary: make(map[string]struct{}),
		Synonyms:   make(map[string][]string),
		Blacklist:  make(map[string]struct{}),
		SoftSkills: append([]string(nil), softSkills...),
		Majors:     make(map[string]struct{}),
	}

	var skills, blacklist, taxonomy map[string][]string
	if err := loadTable(opts.Dir, skillsFile, "categorized_strings.schema.json", &skills); err != nil {
		log.Warn("skill vocabulary unavailable, matcher degrades to empty vocabulary",
			zap.String("file", skillsFile), zap.Error(err))
	}
	if err := loadTable(opts.Dir, blacklistFile, "categorized_strings.schema.json", &blacklist); err != nil {
		log.Warn("blacklist unavailable, validator degrades to length checks only",
			zap.String("file", blacklistFile), zap.Error(err))
	}
	if err := loadTable(opts.Dir, taxonomyFile, "categorized_strings.schema.json", &taxonomy); err != nil {
		log.Warn("major taxonomy unavailable, major validation degrades",
			zap.String("file", taxonomyFile), zap.Error(err))
	}

	var synonyms map[string][]string
	if err := loadTable(opts.Dir, synonymsFile, "synonyms.schema.json", &synonyms); err != nil {
		log.Warn("synonym map unavailable, deduplication keeps surface forms",
			zap.String("file", synonymsFile), zap.Error(err))
	}

	for _, list := range skills {
		for _, skill := range list {
			s.Vocabulary[strings.ToLower(skill)] = struct{}{}
		}
	}
	s.VocabularyTerms = make([]string, 0, len(s.Vocabulary))
	for term := range s.Vocabulary {
		s.VocabularyTerms = append(s.VocabularyTerms, term)
	}
	// Longest first so multi-word terms win over embedded shorter terms.
	sort.Slice(s.VocabularyTerms, func(i, j int) bool {
		if len(s.VocabularyTerms[i]) != len(s.VocabularyTerms[j]) {
			return len(s.VocabularyTerms[i]) > len(s.VocabularyTerms[j])
		}
		return s.VocabularyTerms[i] < s.VocabularyTerms[j]
	})

	for main, alts := range synonyms {
		s.Synonyms[main] = append([]string(nil), alts...)
	}

	for _, list := range blacklist {
		for _, phrase := range list {
			s.Blacklist[strings.ToLower(phrase)] = struct{}{}
		}
	}

	// Category order is not meaningful; keep the flattened list sorted so
	// fuzzy major matching is deterministic.
	for _, list := range taxonomy {
		for _, major := range list {
			lower := strings.ToLower(major)
			if _, seen := s.Majors[lower]; !seen {
				s.Majors[lower] = struct{}{}
				s.MajorList = append(s.MajorList, lower)
			}
		}
	}
	sort.Strings(s.MajorList)

	return s
}

// HasSkill reports whether term is a vocabulary entry. Lookup is by exact
// lowercase match.
func (s *Store) HasSkill(term string) bool {
	_, ok := s.Vocabulary[strings.ToLower(term)]
	return ok
}

// HasMajor reports whether major is a taxonomy entry.
func (s *Store) HasMajor(major string) bool {
	_, ok := s.Majors[strings.ToLower(major)]
	return ok
}

// loadTable reads, schema-validates, and unmarshals one resource document.
func loadTable(dir, name, schemaName string, out any) error {
	data, err := readResource(dir, name)
	if err != nil {
		return err
	}

	schema, err := schemaFiles.ReadFile("schemas/" + schemaName)
	if err != nil {
		return fmt.Errorf("failed to read schema %s: %w", schemaName, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("schema validation of %s failed to run: %w", name, err)
	}
	if !result.Valid() {
		var sb strings.Builder
		for i, desc := range result.Errors() {
			if i > 0 {
				sb.WriteString("; ")
			}
			sb.WriteString(desc.String())
		}
		return fmt.Errorf("%s does not match schema: %s", name, sb.String())
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

func readResource(dir, name string) ([]byte, error) {
	if dir != "" {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		return data, nil
	}
	data, err := resourceFiles.ReadFile("resources/" + name)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded %s: %w", name, err)
	}
	return data, nil
}
