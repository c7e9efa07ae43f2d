package llm

import "fmt"

const resumePromptTemplate = `You are a precise resume parser. Extract structured information from the resume below.

CRITICAL INSTRUCTIONS:
1. Return ONLY valid JSON, no markdown, no explanations
2. Extract exact information from the resume - do not invent data
3. For arrays, return empty [] if no data found
4. For strings, return empty "" if no data found
5. Every array element must be a plain string

OUTPUT SCHEMA:
{
  "name": "",
  "email": "",
  "phone": "",
  "linkedin": "",
  "github": "",
  "education": [],
  "skills": [],
  "experience_years": "",
  "companies": [],
  "projects": [],
  "certifications": [],
  "summary": ""
}

RESUME TEXT:
"""
%s
"""

Return only the JSON object, nothing else.`

// ResumePrompt builds the resume-mode extraction prompt.
func ResumePrompt(text string) string {
	return fmt.Sprintf(resumePromptTemplate, text)
}

const jobPromptTemplate = `Extract structured information from the following job description.
STRICTLY RETURN ONLY A VALID JSON OBJECT. DO NOT WRITE ANY EXPLANATION OR EXTRA TEXT.

Job Description:
%s

JSON format:
{
  "title": "<Job Title>",
  "skills_hard": ["<hard skill 1>", "<hard skill 2>"],
  "skills_soft": ["<soft skill 1>", "<soft skill 2>"],
  "experience_min_years": <minimum years of experience, integer>,
  "experience_max_years": <maximum years of experience, integer>,
  "education": ["<degree 1>", "<degree 2>"],
  "projects": ["<project 1>", "<project 2>"],
  "certifications": ["<certification 1>", "<certification 2>"],
  "other_requirements": ["<other requirement 1>", "<other requirement 2>"]
}`

// JobPrompt builds the job-description-mode extraction prompt.
func JobPrompt(text string) string {
	return fmt.Sprintf(jobPromptTemplate, text)
}
