package vocab

// defaultSkills seeds the skills vocabulary file when it does not exist yet.
var defaultSkills = []string{
	"python", "django", "flask", "react", "node.js", "aws", "docker",
	"kubernetes", "sql", "tensorflow", "pytorch", "machine learning",
}

// degreeEntry maps a lowercase keyword to a canonical degree label. Entries
// are checked in order; the first keyword contained in the input wins.
type degreeEntry struct {
	Keyword string
	Label   string
}

// DegreeTable is the ordered keyword -> canonical degree label mapping.
var DegreeTable = []degreeEntry{
	{"bsc", "Bachelor's Degree"},
	{"bachelor", "Bachelor's Degree"},
	{"ba", "Bachelor's Degree"},
	{"msc", "Master's Degree"},
	{"master", "Master's Degree"},
	{"phd", "PhD"},
	{"mba", "MBA"},
}

// SoftSkills are checked for verbatim substring presence.
var SoftSkills = []string{
	"communication", "teamwork", "leadership", "problem solving",
	"collaboration", "adaptability", "time management",
}

// CertProviders are organizations that issue certifications.
var CertProviders = []string{
	"AWS", "Amazon", "Microsoft", "Azure", "Google", "GCP", "Oracle", "IBM",
	"Cisco", "CompTIA", "Red Hat", "VMware", "Salesforce", "SAP", "PMI",
	"Scrum.org", "Scrum Alliance", "ISACA", "ISC2", "EC-Council",
	"Linux Foundation", "Python Institute", "Coursera", "edX",
	"Udacity", "DataCamp", "Kaggle", "HackerRank",
}

// CertKeywords mark a line or phrase as certification-like.
var CertKeywords = []string{
	"Certified", "Certification", "Certificate", "Professional", "Associate",
	"Expert", "Specialist", "Developer", "Architect", "Administrator",
	"Engineer", "Practitioner", "Master", "Advanced",
}

// CertTypes are well-known certification names matched directly.
var CertTypes = []string{
	"AWS Certified", "Azure Certified", "Google Certified",
	"Microsoft Certified", "Cisco Certified", "CompTIA", "PMP", "CAPM",
	"CSM", "CSPO", "PSM", "ITIL", "Six Sigma", "CEH", "CISSP", "Security+",
	"Network+", "Cloud+", "Linux+", "CCNA", "CCNP", "MCSA", "MCSE",
	"OCA", "OCP",
}

// CertDenylist filters known false positives out of certification candidates.
var CertDenylist = []string{
	"machine learning model", "data analyst position", "data scientist role",
	"microsoft sql server management", "microsoft office", "google docs",
	"google sheets", "google cloud platform project",
}

// Domains is the naive job-domain vocabulary.
var Domains = []string{
	"backend", "frontend", "web development", "data science",
	"machine learning", "devops", "mobile", "qa", "security", "ai", "cloud",
}

// LevelKeywords maps a seniority level to the phrases that indicate it.
// Checked in order.
var LevelKeywords = []struct {
	Level    string
	Keywords []string
}{
	{"entry", []string{"entry level", "junior", "jr."}},
	{"mid", []string{"mid-level", "mid level", "midlevel"}},
	{"senior", []string{"senior", "sr.", "lead", "manager"}},
}

// Stopwords excluded from the fuzzy skill-token fallback.
var Stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"by": {}, "for": {}, "from": {}, "has": {}, "have": {}, "in": {},
	"is": {}, "it": {}, "its": {}, "of": {}, "on": {}, "or": {}, "our": {},
	"that": {}, "the": {}, "their": {}, "this": {}, "to": {}, "was": {},
	"we": {}, "were": {}, "will": {}, "with": {}, "you": {}, "your": {},
	"not": {}, "but": {}, "they": {}, "them": {}, "who": {}, "what": {},
	"which": {}, "would": {}, "should": {}, "can": {}, "could": {},
}
