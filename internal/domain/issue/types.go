// Package issue maps a citizen's problem description onto government issue
// categories and the departments responsible for them.  The mapping is a
// deterministic keyword table, so identical input always yields identical
// routing.
package issue

// Category identifies a civic issue domain.
type Category string

const (
	CategoryElectricity   Category = "electricity"
	CategoryWater         Category = "water"
	CategoryRoads         Category = "roads"
	CategoryEducation     Category = "education"
	CategoryHealth        Category = "health"
	CategoryPolice        Category = "police"
	CategoryLand          Category = "land"
	CategoryTransport     Category = "transport"
	CategoryRation        Category = "ration"
	CategoryPension       Category = "pension"
	CategoryMunicipal     Category = "municipal"
	CategoryTax           Category = "tax"
	CategoryBanking       Category = "banking"
	CategoryTelecom       Category = "telecom"
	CategoryRailway       Category = "railway"
	CategoryPassport      Category = "passport"
	CategoryEmployment    Category = "employment"
	CategorySocialWelfare Category = "social_welfare"
	CategoryEnvironment   Category = "environment"
	CategoryGeneral       Category = "general"
)

// Department describes one government body able to handle a category.
type Department struct {
	Name            string `json:"name"`
	Level           string `json:"level"` // central, state, district, local, ...
	GrievancePortal string `json:"grievance_portal,omitempty"`
	ResponseDays    int    `json:"response_days"`
}

// Match is one scored category candidate for a submission.
type Match struct {
	Category           Category     `json:"category"`
	Confidence         float64      `json:"confidence"`
	KeywordsMatched    []string     `json:"keywords_matched"`
	Departments        []Department `json:"departments"`
	SuggestedAuthority string       `json:"suggested_authority"`
	EscalationPath     []string     `json:"escalation_path"`
}

// CategoryInfo summarises a supported category for listing endpoints.
type CategoryInfo struct {
	Value           Category `json:"value"`
	Label           string   `json:"label"`
	DepartmentCount int      `json:"department_count"`
}
