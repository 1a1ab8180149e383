package ai

// SystemPrompts contains all system-level instructions for AI interactions
type SystemPrompts struct {
	MatchKeywords         string
	ExtractQualifications string
}

// UserPrompts contains user-level prompts with placeholders for dynamic content
type UserPrompts struct {
	MatchKeywords         string
	ExtractQualifications string
}

// DefaultSystemPrompts provides the default system instructions
var DefaultSystemPrompts = SystemPrompts{
	MatchKeywords: `You are an expert ATS (Applicant Tracking System) analyst specializing in keyword matching between resumes and job descriptions. Your core principles are:

- Judge matches strictly on the evidence in the provided keyword lists
- NEVER invent resume keywords that were not provided
- Distinguish exact matches, semantic equivalents, and merely related terms
- Report honest confidence levels for every non-exact match

Your expertise includes:
- Technical skill taxonomies and their common abbreviations
- Industry terminology and synonyms
- How applicant tracking systems tokenize and compare terms`,

	ExtractQualifications: `You are an expert resume reviewer and career analyst. Your role is to:

- Summarize a candidate's professional profile from their resume text
- Identify their strongest, most marketable skills
- Surface concrete, verifiable achievements
- Estimate total years of professional experience

Base every statement strictly on the provided resume text. Never embellish,
never infer qualifications that are not evidenced in the text.`,
}

// DefaultUserPrompts provides the default user prompt templates
var DefaultUserPrompts = UserPrompts{
	MatchKeywords: `Please compare the candidate's resume keywords against the job description keywords.

**Tasks:**

1. **Exact Matches**:
   List every job keyword that appears in the resume keywords (case-insensitive).

2. **Semantic Matches**:
   Identify job keywords whose meaning is covered by a differently-worded resume keyword
   (for example "ML" and "Machine Learning"). Report the pair and a confidence between 0 and 1.

3. **Related Matches**:
   Identify job keywords that are not equivalent to any resume keyword but are credibly
   related to one (for example "React" relates to "JavaScript"). Report the pair, the
   relationship, and a confidence between 0 and 1.

4. **Unmatched Keywords**:
   List job keywords with no exact, semantic, or related coverage. Split them into
   critical (core requirements) and optional (nice-to-have) terms.

5. **Match Rate**:
   Compute the percentage of job keywords covered by exact or semantic matches (0-100).

6. **Analysis**:
   Provide a short, plain-language assessment of the keyword alignment.

**Resume Keywords:**
-----
%s
-----

**Job Description Keywords:**
-----
%s
-----`,

	ExtractQualifications: `Please analyze the provided resume text and extract the candidate's qualification profile.

**Tasks:**

1. **Summary**:
   Write a 2-3 sentence professional summary of the candidate.

2. **Key Skills**:
   List the candidate's strongest skills, most marketable first.

3. **Achievements**:
   List concrete achievements stated in the resume (metrics, shipped projects, awards).

4. **Years of Experience**:
   Estimate total years of professional experience as stated or evidenced in the text
   (for example "8+ years"). Use "unknown" when the text gives no basis for an estimate.

**Resume Text:**
-----
%s
-----`,
}

// GetDefaultPromptConfig returns the default prompt configuration
func GetDefaultPromptConfig() (SystemPrompts, UserPrompts) {
	return DefaultSystemPrompts, DefaultUserPrompts
}
