package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"transparency/models"
)

// RecordSource is a store the catalog can be loaded from once at start-up.
type RecordSource interface {
	GetCandidates(ctx context.Context) ([]models.Candidate, error)
	GetCommissions(ctx context.Context) ([]models.Commission, error)
	GetInstitutions(ctx context.Context) ([]models.Institution, error)
	GetNewsArticles(ctx context.Context) ([]models.NewsArticle, error)
}

// Load reads every collection from src and indexes it.
func Load(ctx context.Context, src RecordSource) (*Catalog, error) {
	var doc Document
	var err error
	if doc.Candidates, err = src.GetCandidates(ctx); err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}
	if doc.Commissions, err = src.GetCommissions(ctx); err != nil {
		return nil, fmt.Errorf("load commissions: %w", err)
	}
	if doc.Institutions, err = src.GetInstitutions(ctx); err != nil {
		return nil, fmt.Errorf("load institutions: %w", err)
	}
	if doc.News, err = src.GetNewsArticles(ctx); err != nil {
		return nil, fmt.Errorf("load news: %w", err)
	}
	return New(doc)
}

//go:embed catalog.schema.json
var documentSchema []byte

var (
	compiledSchema     *gojsonschema.Schema
	compiledSchemaErr  error
	compiledSchemaOnce sync.Once
)

var ErrInvalidDocument = errors.New("catalog document does not match schema")

// ValidateDocument checks raw JSON against the catalog document schema.
func ValidateDocument(data []byte) error {
	compiledSchemaOnce.Do(func() {
		compiledSchema, compiledSchemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(documentSchema))
	})
	if compiledSchemaErr != nil {
		return fmt.Errorf("compile catalog schema: %w", compiledSchemaErr)
	}

	result, err := compiledSchema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(msgs, "; "))
	}
	return nil
}

// Parse validates and decodes a catalog document.
func Parse(data []byte) (*Catalog, error) {
	if err := ValidateDocument(data); err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog document: %w", err)
	}
	return New(doc)
}

// LoadFile reads a catalog document from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Parse(data)
}
