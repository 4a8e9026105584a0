package catalog

import (
	"strconv"

	"transparency/internal/query"
	"transparency/models"
)

// Candidate sort keys
const (
	SortCandidatesByName           query.SortKey = "name"
	SortCandidatesByExperience     query.SortKey = "experience"
	SortCandidatesByInstitution    query.SortKey = "institution"
	SortCandidatesBySpecialization query.SortKey = "specialization"
)

// Commission sort keys
const (
	SortCommissionsByName       query.SortKey = "name"
	SortCommissionsByDate       query.SortKey = "date"
	SortCommissionsByCandidates query.SortKey = "candidates"
	SortCommissionsByProgress   query.SortKey = "progress"
)

// Institution sort keys
const (
	SortInstitutionsByName query.SortKey = "name"
	SortInstitutionsByType query.SortKey = "type"
)

// News sort keys
const (
	SortNewsByDate     query.SortKey = "date"
	SortNewsByTitle    query.SortKey = "title"
	SortNewsByCategory query.SortKey = "category"
	SortNewsByViews    query.SortKey = "views"
)

// ExperienceBuckets partition years of experience. "25+" starts above the "16-25" bucket.
var ExperienceBuckets = []query.Bucket{
	query.Between("0-5", 0, 5),
	query.Between("6-15", 6, 15),
	query.Between("16-25", 16, 25),
	query.AtLeast("25+", 26),
}

var CandidateSchema = (&query.Schema[models.Candidate]{
	Name: "candidates",
	Searchable: []query.Field[models.Candidate]{
		func(c models.Candidate) string { return c.Name },
		func(c models.Candidate) string { return c.Role },
		func(c models.Candidate) string { return c.Institution },
		func(c models.Candidate) string { return models.Deref(c.Summary) },
		func(c models.Candidate) string { return c.Specialization },
	},
	Filters: map[string]query.Field[models.Candidate]{
		"institution":    func(c models.Candidate) string { return c.Institution },
		"specialization": func(c models.Candidate) string { return c.Specialization },
		"status":         func(c models.Candidate) string { return c.Status },
		"commission":     func(c models.Candidate) string { return models.Deref(c.CommissionID) },
	},
	Lists: map[string]query.ListField[models.Candidate]{
		"certifications": func(c models.Candidate) []string { return c.Certifications },
	},
	Ranges: map[string]query.Range[models.Candidate]{
		"experience": {
			Value:   func(c models.Candidate) int { return c.YearsOfExperience },
			Buckets: ExperienceBuckets,
		},
	},
	Sorts: map[query.SortKey]query.Comparator[models.Candidate]{
		SortCandidatesByName:           query.ByString(func(c models.Candidate) string { return c.Name }, query.Asc),
		SortCandidatesByExperience:     query.ByInt(func(c models.Candidate) int { return c.YearsOfExperience }, query.Desc),
		SortCandidatesByInstitution:    query.ByString(func(c models.Candidate) string { return c.Institution }, query.Asc),
		SortCandidatesBySpecialization: query.ByString(func(c models.Candidate) string { return c.Specialization }, query.Asc),
	},
	DefaultSort: SortCandidatesByName,
}).MustValidate()

var commissionByDate = query.ByDate(func(c models.Commission) string { return c.StartDate }, query.Desc)

var CommissionSchema = (&query.Schema[models.Commission]{
	Name: "commissions",
	Searchable: []query.Field[models.Commission]{
		func(c models.Commission) string { return c.Name },
		func(c models.Commission) string { return c.Type },
		func(c models.Commission) string { return c.Status },
		func(c models.Commission) string { return models.Deref(c.Description) },
	},
	Filters: map[string]query.Field[models.Commission]{
		"status": func(c models.Commission) string { return c.Status },
		"type":   func(c models.Commission) string { return c.Type },
	},
	Sorts: map[query.SortKey]query.Comparator[models.Commission]{
		SortCommissionsByName:       query.ByString(func(c models.Commission) string { return c.Name }, query.Asc),
		SortCommissionsByDate:       commissionByDate,
		SortCommissionsByCandidates: query.ByInt(func(c models.Commission) int { return c.CandidatesCount }, query.Desc),
		SortCommissionsByProgress: query.Then(
			query.ByInt(func(c models.Commission) int { return c.Progress() }, query.Desc),
			commissionByDate,
		),
	},
	DefaultSort: SortCommissionsByDate,
}).MustValidate()

var InstitutionSchema = (&query.Schema[models.Institution]{
	Name: "institutions",
	Searchable: []query.Field[models.Institution]{
		func(i models.Institution) string { return i.Name },
		func(i models.Institution) string { return i.Type },
		func(i models.Institution) string { return i.Description },
		func(i models.Institution) string { return i.Address },
	},
	Filters: map[string]query.Field[models.Institution]{
		"type": func(i models.Institution) string { return i.Type },
	},
	Sorts: map[query.SortKey]query.Comparator[models.Institution]{
		SortInstitutionsByName: query.ByString(func(i models.Institution) string { return i.Name }, query.Asc),
		SortInstitutionsByType: query.ByString(func(i models.Institution) string { return i.Type }, query.Asc),
	},
	DefaultSort: SortInstitutionsByName,
}).MustValidate()

var NewsSchema = (&query.Schema[models.NewsArticle]{
	Name: "news",
	Searchable: []query.Field[models.NewsArticle]{
		func(n models.NewsArticle) string { return n.Title },
		func(n models.NewsArticle) string { return n.Excerpt },
		func(n models.NewsArticle) string { return n.Category },
		func(n models.NewsArticle) string { return models.Deref(n.Author) },
	},
	SearchableLists: []query.ListField[models.NewsArticle]{
		func(n models.NewsArticle) []string { return n.Tags },
	},
	Filters: map[string]query.Field[models.NewsArticle]{
		"category": func(n models.NewsArticle) string { return n.Category },
		"author":   func(n models.NewsArticle) string { return models.Deref(n.Author) },
		"featured": func(n models.NewsArticle) string { return strconv.FormatBool(n.Featured) },
	},
	Lists: map[string]query.ListField[models.NewsArticle]{
		"tags": func(n models.NewsArticle) []string { return n.Tags },
	},
	Sorts: map[query.SortKey]query.Comparator[models.NewsArticle]{
		SortNewsByDate:     query.ByDate(func(n models.NewsArticle) string { return n.Date }, query.Desc),
		SortNewsByTitle:    query.ByString(func(n models.NewsArticle) string { return n.Title }, query.Asc),
		SortNewsByCategory: query.ByString(func(n models.NewsArticle) string { return n.Category }, query.Asc),
		SortNewsByViews:    query.ByInt(func(n models.NewsArticle) int { return n.ViewCount() }, query.Desc),
	},
	DefaultSort: SortNewsByDate,
}).MustValidate()
