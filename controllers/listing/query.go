package listingcontroller

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kiwicar-nz/marketplace-api/models"
	"gorm.io/gorm"
)

// searchQuery is one validated set of search parameters. Each present field
// contributes a single predicate; absent fields contribute none.
type searchQuery struct {
	Search       string
	Makes        []string
	Model        string
	MinPrice     *int
	MaxPrice     *int
	MinYear      *int
	MaxYear      *int
	MinMileage   *int
	MaxMileage   *int
	Region       string
	FuelType     string
	Transmission string
	BodyType     string
	Sort         string
}

// sortClauses maps the public sort keys to ORDER BY clauses. Anything else
// falls back to newest-first.
var sortClauses = map[string]string{
	"price_asc":   "price ASC",
	"price_desc":  "price DESC",
	"mileage_asc": "mileage ASC",
	"newest":      "created_at DESC",
}

const defaultSort = "created_at DESC"

func parseSearchQuery(c *gin.Context) (searchQuery, error) {
	q := searchQuery{
		Search:       strings.TrimSpace(c.Query("search")),
		Model:        strings.TrimSpace(c.Query("model")),
		Region:       strings.TrimSpace(c.Query("region")),
		FuelType:     c.Query("fuelType"),
		Transmission: c.Query("transmission"),
		BodyType:     c.Query("bodyType"),
		Sort:         c.Query("sort"),
	}

	// The make filter is a comma-separated set, matched as membership.
	if makes := c.Query("make"); makes != "" {
		for _, m := range strings.Split(makes, ",") {
			if m = strings.TrimSpace(m); m != "" {
				q.Makes = append(q.Makes, m)
			}
		}
	}

	for _, f := range []struct {
		name string
		dst  **int
	}{
		{"minPrice", &q.MinPrice},
		{"maxPrice", &q.MaxPrice},
		{"minYear", &q.MinYear},
		{"maxYear", &q.MaxYear},
		{"minMileage", &q.MinMileage},
		{"maxMileage", &q.MaxMileage},
	} {
		raw := c.Query(f.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return q, fmt.Errorf("invalid %s", f.name)
		}
		*f.dst = &n
	}

	return q, nil
}

// apply chains every present predicate onto the base query. Range bounds
// are inclusive. Only active listings are searchable.
func (q searchQuery) apply(query *gorm.DB) *gorm.DB {
	query = query.Where("status = ?", models.ListingStatusActive)

	if q.Search != "" {
		pattern := "%" + strings.ToLower(q.Search) + "%"
		query = query.Where(
			"LOWER(make) LIKE ? OR LOWER(model) LIKE ? OR LOWER(variant) LIKE ? OR LOWER(description) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	if len(q.Makes) > 0 {
		query = query.Where("make IN ?", q.Makes)
	}
	if q.Model != "" {
		query = query.Where("LOWER(model) LIKE ?", "%"+strings.ToLower(q.Model)+"%")
	}
	if q.MinPrice != nil {
		query = query.Where("price >= ?", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		query = query.Where("price <= ?", *q.MaxPrice)
	}
	if q.MinYear != nil {
		query = query.Where("year >= ?", *q.MinYear)
	}
	if q.MaxYear != nil {
		query = query.Where("year <= ?", *q.MaxYear)
	}
	if q.MinMileage != nil {
		query = query.Where("mileage >= ?", *q.MinMileage)
	}
	if q.MaxMileage != nil {
		query = query.Where("mileage <= ?", *q.MaxMileage)
	}
	if q.Region != "" {
		query = query.Where("LOWER(region) LIKE ?", "%"+strings.ToLower(q.Region)+"%")
	}
	if q.FuelType != "" {
		query = query.Where("fuel_type = ?", q.FuelType)
	}
	if q.Transmission != "" {
		query = query.Where("transmission = ?", q.Transmission)
	}
	if q.BodyType != "" {
		query = query.Where("body_type = ?", q.BodyType)
	}

	return query
}

func (q searchQuery) orderClause() string {
	if clause, ok := sortClauses[q.Sort]; ok {
		return clause
	}
	return defaultSort
}
