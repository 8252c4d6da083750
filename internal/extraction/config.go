package extraction

// Config enumerates every tunable of the extraction engine. It is passed at
// construction and never mutated afterwards.
type Config struct {
	// Keyphrase capability parameters.
	KeyphraseTopN      int
	KeyphraseThreshold float64
	KeyphraseNgramMin  int
	KeyphraseNgramMax  int
	KeyphraseDiversity float64

	// Section parser item length window.
	SectionMinLength int
	SectionMaxLength int

	// Post-processing skill length window.
	MinSkillLength int
	MaxSkillLength int

	// Entity labels accepted from the NER capability.
	EntityLabels []string

	// CacheSize bounds provider-side caching of repeated texts.
	CacheSize int
	// BatchSize caps concurrent texts in batch extraction.
	BatchSize int
}

// DefaultConfig returns the tuned production parameters.
func DefaultConfig() Config {
	return Config{
		KeyphraseTopN:      25,
		KeyphraseThreshold: 0.38,
		KeyphraseNgramMin:  1,
		KeyphraseNgramMax:  3,
		KeyphraseDiversity: 0.75,

		SectionMinLength: 2,
		SectionMaxLength: 60,

		MinSkillLength: 2,
		MaxSkillLength: 60,

		EntityLabels: []string{"PRODUCT", "ORG", "GPE"},

		CacheSize: 1500,
		BatchSize: 50,
	}
}
