package nlp

// Curated gazetteers for Indian civic text.  Matching is case-insensitive
// on word boundaries.

var indianStates = []string{
	"andhra pradesh", "arunachal pradesh", "assam", "bihar", "chhattisgarh",
	"goa", "gujarat", "haryana", "himachal pradesh", "jharkhand", "karnataka",
	"kerala", "madhya pradesh", "maharashtra", "manipur", "meghalaya", "mizoram",
	"nagaland", "odisha", "punjab", "rajasthan", "sikkim", "tamil nadu",
	"telangana", "tripura", "uttar pradesh", "uttarakhand", "west bengal",
	"delhi", "jammu and kashmir", "ladakh", "chandigarh", "puducherry",
}

var indianCities = []string{
	"mumbai", "delhi", "bangalore", "bengaluru", "hyderabad", "chennai",
	"kolkata", "pune", "ahmedabad", "jaipur", "lucknow", "kanpur",
	"nagpur", "indore", "thane", "bhopal", "visakhapatnam", "patna",
	"vadodara", "ghaziabad", "ludhiana", "agra", "nashik", "ranchi",
}

// Civic phrase groups for categorized matching.

var departmentPhrases = []string{
	"electricity board", "water board", "municipal corporation",
	"police station", "tehsil office", "district collector",
	"block development office", "gram panchayat", "nagar palika",
	"pwd", "phed", "rto", "education department", "health department",
}

var rtiTermPhrases = []string{
	"right to information", "rti act", "section 6", "section 8",
	"public information officer", "pio", "first appellate authority",
	"state information commission", "central information commission",
}

var complaintMarkerPhrases = []string{
	"grievance", "complaint", "harassment", "corruption",
	"bribe", "negligence", "misconduct", "poor service",
}

// Sentiment keyword groups.

var urgentWords = []string{
	"urgent", "immediately", "emergency", "asap", "critical",
	"life threatening", "danger", "dire", "pressing", "time-sensitive",
}

var frustratedWords = []string{
	"frustrated", "angry", "disappointed", "fed up", "worst",
	"terrible", "pathetic", "disgusted", "outraged", "unacceptable",
}

var formalWords = []string{
	"respectfully", "humbly", "request", "kindly", "pursuant",
	"hereby", "aforementioned", "undersigned",
}

// Common stop words filtered out of key-phrase candidates.
var stopWords = map[string]struct{}{
	"about": {}, "after": {}, "again": {}, "against": {}, "being": {},
	"below": {}, "between": {}, "could": {}, "doing": {}, "during": {},
	"every": {}, "having": {}, "other": {}, "should": {}, "since": {},
	"their": {}, "there": {}, "these": {}, "those": {}, "through": {},
	"under": {}, "until": {}, "where": {}, "which": {}, "while": {},
	"would": {}, "because": {}, "before": {}, "please": {},
}
