package models

// Candidate entity
type Candidate struct {
	ID                     string     `json:"id"`
	Name                   string     `json:"name"`
	Role                   string     `json:"role"`
	Institution            string     `json:"institution"`
	CommissionID           *string    `json:"commissionId,omitempty"`
	Specialization         string     `json:"specialization"`
	Status                 string     `json:"status"`
	YearsOfExperience      int        `json:"yearsOfExperience"`
	ImageURL               *string    `json:"imageUrl,omitempty"`
	Summary                *string    `json:"summary,omitempty"`
	ProfessionalExperience *string    `json:"professionalExperience,omitempty"`
	AcademicExperience     *string    `json:"academicExperience,omitempty"`
	HumanProjection        *string    `json:"humanProjection,omitempty"`
	Education              []Degree   `json:"education"`
	Experience             []Position `json:"experience"`
	Certifications         []string   `json:"certifications,omitempty"`
	Publications           []string   `json:"publications,omitempty"`
	Awards                 []string   `json:"awards,omitempty"`
	CVURL                  *string    `json:"cvUrl,omitempty"`
	DeclarationURL         *string    `json:"declarationUrl,omitempty"`
}

// Degree entry of a candidate's education
type Degree struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        int    `json:"year"`
}

// Position held by a candidate
type Position struct {
	Title       string  `json:"title"`
	Institution string  `json:"institution"`
	StartYear   int     `json:"startYear"`
	EndYear     *int    `json:"endYear,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Commission entity
type Commission struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Type               string     `json:"type"`
	Status             string     `json:"status"`
	Description        *string    `json:"description,omitempty"`
	StartDate          string     `json:"startDate"`
	EndDate            string     `json:"endDate"`
	CandidatesCount    int        `json:"candidatesCount"`
	PositionsAvailable int        `json:"positionsAvailable"`
	Phases             []Phase    `json:"phases"`
	Members            []Member   `json:"members"`
	Requirements       []string   `json:"requirements"`
	Documents          []Document `json:"documents"`
}

// Phase of a selection process
type Phase struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

// Member of a commission
type Member struct {
	Name        string  `json:"name"`
	Role        string  `json:"role"`
	Institution string  `json:"institution"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

// Document published by a commission
type Document struct {
	Title string `json:"title"`
	Type  string `json:"type"`
	URL   string `json:"url"`
}

// Institution entity
type Institution struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Type          string        `json:"type"`
	Description   string        `json:"description"`
	Phone         string        `json:"phone"`
	Email         string        `json:"email"`
	Website       string        `json:"website"`
	Address       string        `json:"address"`
	Schedule      string        `json:"schedule"`
	ImageURL      *string       `json:"imageUrl,omitempty"`
	Mission       *string       `json:"mission,omitempty"`
	Vision        *string       `json:"vision,omitempty"`
	Authorities   []Authority   `json:"authorities,omitempty"`
	BudgetHistory []BudgetEntry `json:"budgetHistory,omitempty"`
}

// Authority of an institution
type Authority struct {
	Name     string  `json:"name"`
	Position string  `json:"position"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

// BudgetEntry is the yearly budget of an institution
type BudgetEntry struct {
	Year     int     `json:"year"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// NewsArticle entity
type NewsArticle struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Content  *string  `json:"content,omitempty"`
	Date     string   `json:"date"`
	ImageURL string   `json:"imageUrl"`
	Category string   `json:"category"`
	Author   *string  `json:"author,omitempty"`
	ReadTime *string  `json:"readTime,omitempty"`
	Views    *int     `json:"views,omitempty"`
	Featured bool     `json:"featured,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// LatestBudget returns the budget entry with the highest year.
func (i Institution) LatestBudget() (BudgetEntry, bool) {
	var latest BudgetEntry
	found := false
	for _, b := range i.BudgetHistory {
		if !found || b.Year > latest.Year {
			latest = b
			found = true
		}
	}
	return latest, found
}

// ViewCount treats a missing counter as zero views.
func (n NewsArticle) ViewCount() int {
	if n.Views == nil {
		return 0
	}
	return *n.Views
}

// Deref returns the pointed-to string or "" when absent.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
