package types

// ContactInfo holds contact details extracted from a resume. Empty string
// means the pattern did not match.
type ContactInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// ResumeRecord is the structured view of a candidate resume. It is built
// once per scoring request and never mutated afterwards.
type ResumeRecord struct {
	RawText     string      `json:"raw_text"`
	ContactInfo ContactInfo `json:"contact_info"`
	Skills      []string    `json:"skills"`
	HardSkills  []string    `json:"hard_skills"`
	SoftSkills  []string    `json:"soft_skills"`
	Keywords    []string    `json:"keywords"`
	FileName    string      `json:"file_name,omitempty"`
	FileFormat  string      `json:"file_format,omitempty"`
}

// KeywordCount is a single ranked keyword with its raw frequency.
type KeywordCount struct {
	Keyword   string `json:"keyword"`
	Frequency int    `json:"frequency"`
}

// KeywordInfo is the frequency-ranked keyword signal for a job description.
// SingleWords is ordered most-frequent first, ties broken by first occurrence.
type KeywordInfo struct {
	SingleWords []KeywordCount `json:"single_words"`
	Phrases     []string       `json:"phrases"`
}

// ExperienceRequirement captures the experience demanded by a posting.
// Years is either a single figure ("5") or a range ("3-5"); empty when the
// posting does not state one. Level is one of entry/mid/senior/executive or
// empty.
type ExperienceRequirement struct {
	Years string `json:"years,omitempty"`
	Level string `json:"level,omitempty"`
}

// EducationRequirement captures degree, field and certification demands.
type EducationRequirement struct {
	DegreeLevel    string   `json:"degree_level,omitempty"`
	FieldsOfStudy  []string `json:"field_of_study"`
	Certifications []string `json:"certifications"`
}

// Requirements holds the section-scoped requirement lists parsed out of a
// job description.
type Requirements struct {
	MustHave         []string `json:"must_have"`
	NiceToHave       []string `json:"nice_to_have"`
	Responsibilities []string `json:"responsibilities"`
	Benefits         []string `json:"benefits"`
	Qualifications   []string `json:"qualifications"`
}

// UnknownPosition is the sentinel job title when no pattern matches.
const UnknownPosition = "Unknown Position"

// JobRecord is the structured view of a job posting. Created once per
// analysis, immutable, never cached across calls.
type JobRecord struct {
	RawText             string                `json:"raw_text"`
	RequiredSkills      []string              `json:"required_skills"`
	PreferredSkills     []string              `json:"preferred_skills"`
	RequiredHardSkills  []string              `json:"required_hard_skills"`
	RequiredSoftSkills  []string              `json:"required_soft_skills"`
	PreferredHardSkills []string              `json:"preferred_hard_skills"`
	PreferredSoftSkills []string              `json:"preferred_soft_skills"`
	AllHardSkills       []string              `json:"all_hard_skills"`
	AllSoftSkills       []string              `json:"all_soft_skills"`
	ExperienceRequired  ExperienceRequirement `json:"experience_required"`
	EducationRequired   EducationRequirement  `json:"education_required"`
	Keywords            KeywordInfo           `json:"keywords"`
	Requirements        Requirements          `json:"requirements"`
	JobTitle            string                `json:"job_title"`
	EmploymentType      string                `json:"employment_type"`
	IndustryKeywords    []string              `json:"industry_keywords"`
}

// ComponentBreakdown pairs a component score with its weight in the overall
// score.
type ComponentBreakdown struct {
	Score  float64 `json:"score"`
	Weight float64 `json:"weight"`
}

// DetailedFeedback is the rule-generated explanation attached to a score.
type DetailedFeedback struct {
	Strengths         []string                      `json:"strengths"`
	Weaknesses        []string                      `json:"weaknesses"`
	MissingKeywords   []string                      `json:"missing_keywords"`
	MissingSkills     []string                      `json:"missing_skills"`
	MissingHardSkills []string                      `json:"missing_hard_skills"`
	MissingSoftSkills []string                      `json:"missing_soft_skills"`
	ScoreBreakdown    map[string]ComponentBreakdown `json:"score_breakdown"`
}

// ComponentScores holds the seven weighted component scores plus the legacy
// combined skills score. Every value is in [0,100], rounded to 2 decimals.
type ComponentScores struct {
	Keywords   float64 `json:"keywords"`
	Skills     float64 `json:"skills"`
	HardSkills float64 `json:"hard_skills"`
	SoftSkills float64 `json:"soft_skills"`
	JobTitle   float64 `json:"job_title"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
	Formatting float64 `json:"formatting"`
}

// ScoreResult is the outcome of scoring one resume against one job
// description. This shape is the stable JSON contract consumers depend on.
type ScoreResult struct {
	ResumeFile      string           `json:"resume_file,omitempty"`
	OverallScore    float64          `json:"overall_score"`
	Scores          ComponentScores  `json:"scores"`
	Feedback        DetailedFeedback `json:"feedback"`
	Recommendations []string         `json:"recommendations"`
}

// SemanticMatch is an LLM-identified equivalence between a job keyword and a
// resume keyword ("ML" vs "Machine Learning").
type SemanticMatch struct {
	JobKeyword    string  `json:"jobKeyword"`
	ResumeKeyword string  `json:"resumeKeyword"`
	Confidence    float64 `json:"confidence"`
}

// RelatedMatch is an LLM-identified relationship between keywords that are
// not equivalent but credit each other ("React" vs "JavaScript").
type RelatedMatch struct {
	JobKeyword    string  `json:"jobKeyword"`
	ResumeKeyword string  `json:"resumeKeyword"`
	Relationship  string  `json:"relationship"`
	Confidence    float64 `json:"confidence"`
}

// KeywordMatchResult is the outcome of matching job keywords against resume
// keywords, either via the LLM path or the deterministic fallback. Related
// matches count at half weight in MatchRate.
type KeywordMatchResult struct {
	ExactMatches      []string        `json:"exactMatches"`
	SemanticMatches   []SemanticMatch `json:"semanticMatches,omitempty"`
	RelatedMatches    []RelatedMatch  `json:"relatedMatches,omitempty"`
	UnmatchedCritical []string        `json:"unmatchedCritical"`
	UnmatchedOptional []string        `json:"unmatchedOptional,omitempty"`
	MatchRate         float64         `json:"matchRate"`
	Analysis          string          `json:"analysis,omitempty"`
}

// QualificationProfile is the LLM-extracted summary of a candidate's
// qualifications, used by the match command's enrichment output.
type QualificationProfile struct {
	Summary         string   `json:"summary"`
	KeySkills       []string `json:"keySkills"`
	Achievements    []string `json:"achievements"`
	YearsExperience string   `json:"yearsExperience"`
}

// MatchReport is the match command's output: the keyword match plus the
// optional qualification profile enrichment.
type MatchReport struct {
	Match          *KeywordMatchResult   `json:"match"`
	Qualifications *QualificationProfile `json:"qualifications,omitempty"`
}

// ScoreRequest is the HTTP request body for the score endpoint. ResumeFormat
// asserts the original file extension when text was extracted upstream.
type ScoreRequest struct {
	ResumeText     string `json:"resumeText"`
	ResumeFormat   string `json:"resumeFormat,omitempty"`
	JobDescription string `json:"jobDescription"`
}

// AnalyzeRequest is the HTTP request body for the analyze endpoint.
type AnalyzeRequest struct {
	JobDescription string `json:"jobDescription"`
}

// ParseRequest is the HTTP request body for the parse endpoint.
type ParseRequest struct {
	ResumeText string `json:"resumeText"`
}

// MatchRequest is the HTTP request body for the match endpoint.
type MatchRequest struct {
	ResumeText     string `json:"resumeText"`
	JobDescription string `json:"jobDescription"`
}
